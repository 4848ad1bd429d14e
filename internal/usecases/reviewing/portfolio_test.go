package reviewing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_AccountViews(t *testing.T) {
	t.Run("carrega as coleções e agrega por conta", func(t *testing.T) {
		f := newFixture(t, true)

		f.clients.EXPECT().ListClients(gomock.Any(), []domain.ClientStatus{domain.ClientStatusActive}).Return([]*domain.Client{
			{ID: "c1", CompanyName: "Ótica Centro"},
			{ID: "c2", CompanyName: "Ótica Norte"},
		}, nil)
		f.accounts.EXPECT().ListAccounts(gomock.Any(), domain.PlatformMeta, gomock.Any()).Return([]*domain.AdAccount{metaAccount("c1", "act_1")}, nil)
		f.reviews.EXPECT().ListLatestReviews(gomock.Any(), domain.PlatformMeta).Return([]*domain.ReviewSnapshot{
			{ClientID: "c1", AccountID: "act_1", Platform: domain.PlatformMeta, TotalSpent: 1000, DailyBudgetCurrent: 50, ReviewDate: fixedNow},
		}, nil)
		f.customBudgets.EXPECT().ListActiveCustomBudgets(gomock.Any(), domain.PlatformMeta).Return(nil, nil)
		f.campaignHealth.EXPECT().ListLatestCampaignHealth(gomock.Any(), domain.PlatformMeta).Return(nil, nil)

		result, err := f.service.AccountViews(context.Background(), domain.PlatformMeta)

		require.NoError(t, err)
		require.Len(t, result.Clients, 2)
		assert.True(t, result.Clients[0].HasAccount)
		assert.Equal(t, 1000.0, result.Clients[0].TotalSpent)
		assert.False(t, result.Clients[1].HasAccount)
		assert.Equal(t, 2, result.Metrics.TotalClients)
		assert.Equal(t, 3000.0, result.Metrics.TotalBudget)
	})

	t.Run("erro ao carregar dados não chama a agregação", func(t *testing.T) {
		f := newFixture(t, true)
		f.clients.EXPECT().ListClients(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		result, err := f.service.AccountViews(context.Background(), domain.PlatformMeta)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})

	t.Run("plataforma inválida", func(t *testing.T) {
		f := newFixture(t, true)

		_, err := f.service.AccountViews(context.Background(), domain.Platform(""))

		assert.ErrorIs(t, err, ErrInvalidPlatform)
	})
}

func TestService_RecentBatchLogs_DefaultLimit(t *testing.T) {
	f := newFixture(t, true)
	f.batchLogs.EXPECT().ListBatchLogs(gomock.Any(), domain.PlatformGoogle, defaultLogsLimit).Return([]*domain.BatchRunRecord{{ID: "r1"}}, nil)

	records, err := f.service.RecentBatchLogs(context.Background(), domain.PlatformGoogle, 0)

	require.NoError(t, err)
	assert.Len(t, records, 1)
}
