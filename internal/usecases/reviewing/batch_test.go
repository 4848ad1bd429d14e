package reviewing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func expectSuccessfulReview(f *fixture, clientID, accountID string) {
	f.accounts.EXPECT().GetPrimaryAccount(gomock.Any(), clientID, domain.PlatformMeta).Return(metaAccount(clientID, accountID), nil)
	f.customBudgets.EXPECT().GetActiveCustomBudget(gomock.Any(), clientID, domain.PlatformMeta, gomock.Any()).Return(nil, nil)
	f.meta.EXPECT().FetchSpendAndBudget(gomock.Any(), accountID, gomock.Any()).Return(&domain.SpendSnapshot{TotalSpent: 100, DailyBudget: 10}, nil)
	f.reviews.EXPECT().UpsertReview(gomock.Any(), gomock.Any()).Return(nil)
}

func expectProgress(f *fixture, total int) {
	progress := &domain.BatchProgress{ID: "progress-1", Platform: domain.PlatformMeta, Status: domain.BatchProgressRunning, TotalClients: total}
	f.batchProgress.EXPECT().StartProgress(gomock.Any(), domain.PlatformMeta, total).Return(progress, nil)
	for i := 1; i <= total; i++ {
		f.batchProgress.EXPECT().AdvanceProgress(gomock.Any(), "progress-1", i).Return(nil)
	}
	f.batchProgress.EXPECT().FinishProgress(gomock.Any(), "progress-1", domain.BatchProgressCompleted).Return(nil)
}

func TestService_ReviewBatch_SecondClientFails(t *testing.T) {
	f := newFixture(t, true)

	expectProgress(f, 3)
	gomock.InOrder(
		f.accounts.EXPECT().GetPrimaryAccount(gomock.Any(), "c1", domain.PlatformMeta).Return(metaAccount("c1", "act_1"), nil),
		f.accounts.EXPECT().GetPrimaryAccount(gomock.Any(), "c2", domain.PlatformMeta).Return(metaAccount("c2", "act_2"), nil),
		f.accounts.EXPECT().GetPrimaryAccount(gomock.Any(), "c3", domain.PlatformMeta).Return(metaAccount("c3", "act_3"), nil),
	)
	f.customBudgets.EXPECT().GetActiveCustomBudget(gomock.Any(), gomock.Any(), domain.PlatformMeta, gomock.Any()).Return(nil, nil).Times(3)
	f.meta.EXPECT().FetchSpendAndBudget(gomock.Any(), "act_1", gomock.Any()).Return(&domain.SpendSnapshot{TotalSpent: 100}, nil)
	f.meta.EXPECT().FetchSpendAndBudget(gomock.Any(), "act_2", gomock.Any()).Return(nil, errors.New("token expirado"))
	f.meta.EXPECT().FetchSpendAndBudget(gomock.Any(), "act_3", gomock.Any()).Return(&domain.SpendSnapshot{TotalSpent: 300}, nil)
	f.reviews.EXPECT().UpsertReview(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, record *domain.BatchRunRecord) error {
			assert.NotEmpty(t, record.ID)
			assert.Equal(t, domain.PlatformMeta, record.Platform)
			assert.Equal(t, 3, record.TotalClients)
			assert.Equal(t, 2, record.SuccessCount)
			assert.Equal(t, 1, record.ErrorCount)
			assert.False(t, record.GlobalUpdatesPerformed)
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), record.ReviewDate)
			require.Len(t, record.FailedClients, 1)
			assert.Equal(t, "c2", record.FailedClients[0].ClientID)
			return nil
		})

	result, err := f.service.ReviewBatch(context.Background(), domain.BatchReviewRequest{
		Platform:     domain.PlatformMeta,
		Clients:      []domain.BatchClient{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}},
		BatchOptions: domain.BatchOptions{SkipGlobalUpdates: true},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalClients)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, result.TotalClients, result.SuccessCount+result.ErrorCount)
	assert.False(t, result.GlobalUpdatesPerformed)

	require.Len(t, result.Results, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{result.Results[0].ClientID, result.Results[1].ClientID, result.Results[2].ClientID})
	assert.True(t, result.Results[0].Success)
	assert.False(t, result.Results[1].Success)
	assert.Contains(t, result.Results[1].Error, "token expirado")
	assert.True(t, result.Results[2].Success)

	// sem espera depois do último cliente
	assert.Equal(t, []time.Duration{300 * time.Millisecond, 300 * time.Millisecond}, f.sleeps)
}

func TestService_ReviewBatch_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  domain.BatchReviewRequest
		want error
	}{
		{
			name: "Plataforma inválida",
			req:  domain.BatchReviewRequest{Platform: "tiktok", Clients: []domain.BatchClient{{ID: "c1"}}},
			want: ErrInvalidPlatform,
		},
		{
			name: "Lista de clientes vazia",
			req:  domain.BatchReviewRequest{Platform: domain.PlatformMeta},
			want: ErrClientsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)

			result, err := f.service.ReviewBatch(context.Background(), tt.req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestService_ReviewBatch_GlobalUpdates(t *testing.T) {
	t.Run("sincroniza saldos e saúde das campanhas", func(t *testing.T) {
		f := newFixture(t, true)
		expectProgress(f, 1)
		expectSuccessfulReview(f, "c1", "act_1")

		accounts := []*domain.AdAccount{metaAccount("c1", "act_1"), metaAccount("c2", "act_2")}
		f.accounts.EXPECT().ListAccounts(gomock.Any(), domain.PlatformMeta, []domain.AdAccountStatus{domain.AdAccountStatusActive}).Return(accounts, nil)
		f.meta.EXPECT().FetchBalance(gomock.Any(), "act_1").Return(&domain.AccountBalance{Amount: 150, IsPrepay: true}, nil)
		f.meta.EXPECT().FetchBalance(gomock.Any(), "act_2").Return(&domain.AccountBalance{Amount: 0}, nil)
		f.accounts.EXPECT().UpdateBalance(gomock.Any(), "row-act_1", domain.AccountBalance{Amount: 150, IsPrepay: true}, fixedNow).Return(nil)
		f.accounts.EXPECT().UpdateBalance(gomock.Any(), "row-act_2", domain.AccountBalance{Amount: 0}, fixedNow).Return(nil)

		today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		f.meta.EXPECT().FetchSpendAndBudget(gomock.Any(), "act_1", domain.DateRange{Start: today, End: today}).Return(&domain.SpendSnapshot{
			Campaigns: []domain.CampaignDelivery{{ID: "1", Delivering: true}, {ID: "2", Delivering: false}},
		}, nil)
		f.meta.EXPECT().FetchSpendAndBudget(gomock.Any(), "act_2", domain.DateRange{Start: today, End: today}).Return(&domain.SpendSnapshot{}, nil)
		f.campaignHealth.EXPECT().UpsertCampaignHealth(gomock.Any(), &domain.CampaignHealth{
			ClientID: "c1", Platform: domain.PlatformMeta, AccountID: "act_1", SnapshotDate: today,
			ActiveCampaignsCount: 2, UnservedCampaignsCount: 1,
		}).Return(nil)
		f.campaignHealth.EXPECT().UpsertCampaignHealth(gomock.Any(), &domain.CampaignHealth{
			ClientID: "c2", Platform: domain.PlatformMeta, AccountID: "act_2", SnapshotDate: today,
		}).Return(nil)
		f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.service.ReviewBatch(context.Background(), domain.BatchReviewRequest{
			Platform:     domain.PlatformMeta,
			Clients:      []domain.BatchClient{{ID: "c1"}},
			BatchOptions: domain.BatchOptions{UpdateCampaignHealth: true},
		})

		require.NoError(t, err)
		assert.True(t, result.GlobalUpdatesPerformed)
		assert.Equal(t, 1, result.SuccessCount)
	})

	t.Run("plataforma sem saldo encerra a sincronização sem falhar", func(t *testing.T) {
		f := newFixture(t, true)
		expectProgress(f, 1)
		expectSuccessfulReview(f, "c1", "act_1")

		accounts := []*domain.AdAccount{metaAccount("c1", "act_1"), metaAccount("c2", "act_2"), metaAccount("c3", "act_3")}
		f.accounts.EXPECT().ListAccounts(gomock.Any(), domain.PlatformMeta, gomock.Any()).Return(accounts, nil)
		f.meta.EXPECT().FetchBalance(gomock.Any(), "act_1").Return(nil, domain.ErrBalanceNotSupported).Times(1)
		f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.service.ReviewBatch(context.Background(), domain.BatchReviewRequest{
			Platform: domain.PlatformMeta,
			Clients:  []domain.BatchClient{{ID: "c1"}},
		})

		require.NoError(t, err)
		assert.True(t, result.GlobalUpdatesPerformed)
	})

	t.Run("falha ao listar contas marca atualizações como não executadas", func(t *testing.T) {
		f := newFixture(t, true)
		expectProgress(f, 1)
		expectSuccessfulReview(f, "c1", "act_1")

		f.accounts.EXPECT().ListAccounts(gomock.Any(), domain.PlatformMeta, gomock.Any()).Return(nil, errors.New("connection refused"))
		f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record *domain.BatchRunRecord) error {
				assert.False(t, record.GlobalUpdatesPerformed)
				return nil
			})

		result, err := f.service.ReviewBatch(context.Background(), domain.BatchReviewRequest{
			Platform: domain.PlatformMeta,
			Clients:  []domain.BatchClient{{ID: "c1"}},
		})

		require.NoError(t, err)
		assert.False(t, result.GlobalUpdatesPerformed)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 0, result.ErrorCount)
	})

	t.Run("erro em uma conta não interrompe as demais", func(t *testing.T) {
		f := newFixture(t, true)
		expectProgress(f, 1)
		expectSuccessfulReview(f, "c1", "act_1")

		accounts := []*domain.AdAccount{metaAccount("c1", "act_1"), metaAccount("c2", "act_2")}
		f.accounts.EXPECT().ListAccounts(gomock.Any(), domain.PlatformMeta, gomock.Any()).Return(accounts, nil)
		f.meta.EXPECT().FetchBalance(gomock.Any(), "act_1").Return(nil, errors.New("timeout"))
		f.meta.EXPECT().FetchBalance(gomock.Any(), "act_2").Return(&domain.AccountBalance{Amount: 10}, nil)
		f.accounts.EXPECT().UpdateBalance(gomock.Any(), "row-act_2", gomock.Any(), gomock.Any()).Return(nil)
		f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.service.ReviewBatch(context.Background(), domain.BatchReviewRequest{
			Platform: domain.PlatformMeta,
			Clients:  []domain.BatchClient{{ID: "c1"}},
		})

		require.NoError(t, err)
		assert.False(t, result.GlobalUpdatesPerformed)
	})
}

func TestService_ReviewBatch_AuditAndProgressFailuresAreTolerated(t *testing.T) {
	f := newFixture(t, true)

	f.batchProgress.EXPECT().StartProgress(gomock.Any(), domain.PlatformMeta, 2).Return(nil, errors.New("db down"))
	expectSuccessfulReview(f, "c1", "act_1")
	expectSuccessfulReview(f, "c2", "act_2")
	f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	result, err := f.service.ReviewBatch(context.Background(), domain.BatchReviewRequest{
		Platform:     domain.PlatformMeta,
		Clients:      []domain.BatchClient{{ID: "c1"}, {ID: "c2"}},
		BatchOptions: domain.BatchOptions{SkipGlobalUpdates: true},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestService_ReviewBatch_ClientWithoutIDCountsAsError(t *testing.T) {
	f := newFixture(t, true)

	expectProgress(f, 2)
	expectSuccessfulReview(f, "c1", "act_1")
	f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.ReviewBatch(context.Background(), domain.BatchReviewRequest{
		Platform:     domain.PlatformMeta,
		Clients:      []domain.BatchClient{{ID: "c1"}, {ID: ""}},
		BatchOptions: domain.BatchOptions{SkipGlobalUpdates: true},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, ErrClientIDRequired.Error(), result.Results[1].Error)
}

func TestService_ReviewBatch_CallerCancellationDoesNotStopBatch(t *testing.T) {
	f := newFixture(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expectProgress(f, 3)
	f.accounts.EXPECT().GetPrimaryAccount(gomock.Any(), "c1", domain.PlatformMeta).Return(metaAccount("c1", "act_1"), nil)
	f.customBudgets.EXPECT().GetActiveCustomBudget(gomock.Any(), "c1", domain.PlatformMeta, gomock.Any()).Return(nil, nil)
	f.meta.EXPECT().FetchSpendAndBudget(gomock.Any(), "act_1", gomock.Any()).DoAndReturn(
		func(context.Context, string, domain.DateRange) (*domain.SpendSnapshot, error) {
			// cliente HTTP desconectou no meio do lote
			cancel()
			return &domain.SpendSnapshot{TotalSpent: 100}, nil
		})
	f.reviews.EXPECT().UpsertReview(gomock.Any(), gomock.Any()).Return(nil)
	expectSuccessfulReview(f, "c2", "act_2")
	expectSuccessfulReview(f, "c3", "act_3")
	f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.ReviewBatch(ctx, domain.BatchReviewRequest{
		Platform:     domain.PlatformMeta,
		Clients:      []domain.BatchClient{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}},
		BatchOptions: domain.BatchOptions{SkipGlobalUpdates: true},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Len(t, f.sleeps, 2)
}

func TestService_ReviewBatch_PanicInClientIsIsolated(t *testing.T) {
	f := newFixture(t, true)

	expectProgress(f, 3)
	expectSuccessfulReview(f, "c1", "act_1")
	f.accounts.EXPECT().GetPrimaryAccount(gomock.Any(), "c2", domain.PlatformMeta).Return(metaAccount("c2", "act_2"), nil)
	f.customBudgets.EXPECT().GetActiveCustomBudget(gomock.Any(), "c2", domain.PlatformMeta, gomock.Any()).Return(nil, nil)
	f.meta.EXPECT().FetchSpendAndBudget(gomock.Any(), "act_2", gomock.Any()).DoAndReturn(
		func(context.Context, string, domain.DateRange) (*domain.SpendSnapshot, error) {
			panic("resposta inesperada")
		})
	expectSuccessfulReview(f, "c3", "act_3")
	f.batchLogs.EXPECT().InsertBatchLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, record *domain.BatchRunRecord) error {
			assert.Equal(t, 2, record.SuccessCount)
			assert.Equal(t, 1, record.ErrorCount)
			require.Len(t, record.FailedClients, 1)
			assert.Equal(t, "c2", record.FailedClients[0].ClientID)
			return nil
		})

	result, err := f.service.ReviewBatch(context.Background(), domain.BatchReviewRequest{
		Platform:     domain.PlatformMeta,
		Clients:      []domain.BatchClient{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}},
		BatchOptions: domain.BatchOptions{SkipGlobalUpdates: true},
	})

	require.NoError(t, err)
	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].Success)
	assert.False(t, result.Results[1].Success)
	assert.Contains(t, result.Results[1].Error, "resposta inesperada")
	assert.True(t, result.Results[2].Success)
}
