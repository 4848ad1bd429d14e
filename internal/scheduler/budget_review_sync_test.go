package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/budget-review-api/infrastructure/repository/mocks"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/usecases/reviewing"
	"github.com/vfg2006/budget-review-api/internal/usecases/reviewing/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	clientRepo *repomocks.MockClientRepository
	reviewer   *mocks.MockReviewService
	service    *BudgetReviewSyncService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		clientRepo: repomocks.NewMockClientRepository(ctrl),
		reviewer:   mocks.NewMockReviewService(ctrl),
	}

	platforms := reviewing.PlatformClients{
		domain.PlatformMeta: mocks.NewMockAdPlatformClient(ctrl),
	}

	f.service = newBudgetReviewSyncService(f.clientRepo, f.reviewer, platforms, BudgetReviewSyncConfig{
		Schedules: map[domain.Platform]string{
			domain.PlatformMeta:   "0 7 * * *",
			domain.PlatformGoogle: "30 7 * * *",
		},
		UpdateCampaignHealth: true,
		SyncEnabled:          true,
	})

	return f
}

func TestSyncPlatform(t *testing.T) {
	ctx := context.Background()

	t.Run("revisa todos os clientes ativos da plataforma", func(t *testing.T) {
		f := newFixture(t)

		f.clientRepo.EXPECT().
			ListClientsWithActiveAccount(ctx, domain.PlatformMeta).
			Return([]*domain.Client{{ID: "c1"}, {ID: "c2"}}, nil)

		expected := &domain.BatchReviewResult{TotalClients: 2, SuccessCount: 2, GlobalUpdatesPerformed: true}
		f.reviewer.EXPECT().
			ReviewBatch(ctx, domain.BatchReviewRequest{
				Platform: domain.PlatformMeta,
				Clients:  []domain.BatchClient{{ID: "c1"}, {ID: "c2"}},
				BatchOptions: domain.BatchOptions{
					UpdateCampaignHealth: true,
				},
			}).
			Return(expected, nil)

		result, err := f.service.SyncPlatform(ctx, domain.PlatformMeta)
		require.NoError(t, err)
		assert.Equal(t, expected, result)
		assert.False(t, f.service.IsRunning(domain.PlatformMeta))

		status := f.service.GetStatus()["platforms"].(map[string]any)["meta"].(map[string]any)
		assert.Equal(t, expected, status["last_result"])
		assert.Equal(t, "", status["last_error"])
	})

	t.Run("sem clientes não executa o lote", func(t *testing.T) {
		f := newFixture(t)

		f.clientRepo.EXPECT().
			ListClientsWithActiveAccount(ctx, domain.PlatformGoogle).
			Return(nil, nil)

		result, err := f.service.SyncPlatform(ctx, domain.PlatformGoogle)
		require.NoError(t, err)
		assert.Zero(t, result.TotalClients)
	})

	t.Run("erro ao listar clientes fica registrado no status", func(t *testing.T) {
		f := newFixture(t)

		f.clientRepo.EXPECT().
			ListClientsWithActiveAccount(ctx, domain.PlatformMeta).
			Return(nil, errors.New("conexão recusada"))

		_, err := f.service.SyncPlatform(ctx, domain.PlatformMeta)
		require.Error(t, err)

		status := f.service.GetStatus()["platforms"].(map[string]any)["meta"].(map[string]any)
		assert.Contains(t, status["last_error"], "conexão recusada")
	})

	t.Run("plataforma inválida", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.SyncPlatform(ctx, domain.Platform("tiktok"))
		assert.ErrorIs(t, err, reviewing.ErrInvalidPlatform)
	})

	t.Run("execução sobreposta é ignorada", func(t *testing.T) {
		f := newFixture(t)

		require.True(t, f.service.acquire(domain.PlatformMeta))

		_, err := f.service.SyncPlatform(ctx, domain.PlatformMeta)
		assert.ErrorIs(t, err, ErrSyncAlreadyRunning)
		assert.False(t, f.service.TriggerManualSync(ctx, domain.PlatformMeta))
	})
}

func TestTriggerManualSync(t *testing.T) {
	f := newFixture(t)
	done := make(chan struct{})

	f.clientRepo.EXPECT().
		ListClientsWithActiveAccount(gomock.Any(), domain.PlatformMeta).
		Return([]*domain.Client{{ID: "c1"}}, nil)
	f.reviewer.EXPECT().
		ReviewBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.BatchReviewRequest) (*domain.BatchReviewResult, error) {
			defer close(done)
			return &domain.BatchReviewResult{TotalClients: 1, SuccessCount: 1}, nil
		})

	assert.True(t, f.service.TriggerManualSync(context.Background(), domain.PlatformMeta))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("revisão manual não executada")
	}

	assert.Eventually(t, func() bool {
		return !f.service.IsRunning(domain.PlatformMeta)
	}, time.Second, 5*time.Millisecond)
}

func TestStart_Disabled(t *testing.T) {
	f := newFixture(t)
	f.service.config.SyncEnabled = false

	require.NoError(t, f.service.Start(context.Background()))
}

func TestGetStatus_ReportsCredentials(t *testing.T) {
	f := newFixture(t)

	platforms := f.service.GetStatus()["platforms"].(map[string]any)
	assert.Equal(t, true, platforms["meta"].(map[string]any)["credentials"])
	assert.Equal(t, false, platforms["google"].(map[string]any)["credentials"])
}
