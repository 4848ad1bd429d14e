package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/budget-review-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/budget-review-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func newIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	return New(client, WithClock(func() time.Time { return fixedNow })), client
}

func TestFetchSpendAndBudget(t *testing.T) {
	ctx := context.Background()
	period := domain.DateRange{Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), End: fixedNow}
	today := domain.DateRange{Start: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}

	t.Run("soma orçamento de campanhas e conjuntos de anúncios", func(t *testing.T) {
		integrator, client := newIntegrator(t)

		client.EXPECT().GetAccountInsights(ctx, "123", period).Return(&metadomain.AdAccountInsight{Spend: "1520.37"}, nil)
		client.EXPECT().GetActiveCampaigns(ctx, "123").Return([]metadomain.Campaign{
			{ID: "c1", Name: "Campanha 1", EffectiveStatus: "ACTIVE", DailyBudget: "10000"},
			{ID: "c2", Name: "Campanha 2", EffectiveStatus: "ACTIVE"},
		}, nil)
		client.EXPECT().GetActiveAdSets(ctx, "123").Return([]metadomain.AdSet{
			{ID: "a1", CampaignID: "c2", DailyBudget: "2500"},
			{ID: "a2", CampaignID: "c2", DailyBudget: "2550"},
			{ID: "a3", CampaignID: "c1", DailyBudget: "9999"},
		}, nil)
		client.EXPECT().GetCampaignInsights(ctx, "123", today).Return([]metadomain.CampaignInsight{
			{CampaignID: "c1", Impressions: "340", Spend: "42.10"},
			{CampaignID: "c2", Impressions: "0", Spend: "0"},
		}, nil)

		snapshot, err := integrator.FetchSpendAndBudget(ctx, "123", period)
		require.NoError(t, err)

		assert.Equal(t, 1520.37, snapshot.TotalSpent)
		assert.Equal(t, 150.5, snapshot.DailyBudget)
		require.Len(t, snapshot.Campaigns, 2)
		assert.Equal(t, 100.0, snapshot.Campaigns[0].DailyBudget)
		assert.True(t, snapshot.Campaigns[0].Delivering)
		assert.Equal(t, 340, snapshot.Campaigns[0].Impressions)
		assert.Equal(t, 50.5, snapshot.Campaigns[1].DailyBudget)
		assert.False(t, snapshot.Campaigns[1].Delivering)

		active, unserved := snapshot.CampaignCounts()
		assert.Equal(t, 2, active)
		assert.Equal(t, 1, unserved)
	})

	t.Run("sem campanhas não consulta conjuntos nem veiculação", func(t *testing.T) {
		integrator, client := newIntegrator(t)

		client.EXPECT().GetAccountInsights(ctx, "123", period).Return(&metadomain.AdAccountInsight{Spend: "0"}, nil)
		client.EXPECT().GetActiveCampaigns(ctx, "123").Return([]metadomain.Campaign{}, nil)

		snapshot, err := integrator.FetchSpendAndBudget(ctx, "123", period)
		require.NoError(t, err)
		assert.Zero(t, snapshot.TotalSpent)
		assert.Zero(t, snapshot.DailyBudget)
		assert.Empty(t, snapshot.Campaigns)
	})

	t.Run("erro ao consultar gasto", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		apiErr := errors.New("timeout")

		client.EXPECT().GetAccountInsights(ctx, "123", period).Return(nil, apiErr)

		snapshot, err := integrator.FetchSpendAndBudget(ctx, "123", period)
		assert.ErrorIs(t, err, apiErr)
		assert.Nil(t, snapshot)
	})

	t.Run("erro ao consultar campanhas", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		apiErr := errors.New("rate limit")

		client.EXPECT().GetAccountInsights(ctx, "123", period).Return(&metadomain.AdAccountInsight{Spend: "10"}, nil)
		client.EXPECT().GetActiveCampaigns(ctx, "123").Return(nil, apiErr)

		_, err := integrator.FetchSpendAndBudget(ctx, "123", period)
		assert.ErrorIs(t, err, apiErr)
	})
}

func TestFetchBalance(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		info     *metadomain.AdAccountInfo
		expected domain.AccountBalance
	}{
		{
			name:     "conta pós-paga usa o saldo devido",
			info:     &metadomain.AdAccountInfo{Balance: "12345"},
			expected: domain.AccountBalance{Amount: 123.45},
		},
		{
			name: "conta pré-paga lê o saldo disponível",
			info: &metadomain.AdAccountInfo{
				IsPrepayAccount: true,
				FundingSourceDetails: &metadomain.FundingSourceDetails{
					Type:          20,
					DisplayString: "Saldo disponível (R$1.234,56 BRL)",
				},
			},
			expected: domain.AccountBalance{Amount: 1234.56, IsPrepay: true},
		},
		{
			name: "conta pré-paga sem saldo legível usa o limite de gasto",
			info: &metadomain.AdAccountInfo{
				IsPrepayAccount: true,
				SpendCap:        "500000",
				AmountSpent:     "123400",
				FundingSourceDetails: &metadomain.FundingSourceDetails{
					Type:          1,
					DisplayString: "Visa *1234",
				},
			},
			expected: domain.AccountBalance{Amount: 3766, IsPrepay: true},
		},
		{
			name:     "limite de gasto excedido não gera saldo negativo",
			info:     &metadomain.AdAccountInfo{IsPrepayAccount: true, SpendCap: "1000", AmountSpent: "5000"},
			expected: domain.AccountBalance{Amount: 0, IsPrepay: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)
			client.EXPECT().GetAccountInfo(ctx, "act_9").Return(tt.info, nil)

			balance, err := integrator.FetchBalance(ctx, "act_9")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *balance)
		})
	}

	t.Run("erro da API", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().GetAccountInfo(ctx, "act_9").Return(nil, errors.New("boom"))

		balance, err := integrator.FetchBalance(ctx, "act_9")
		assert.Error(t, err)
		assert.Nil(t, balance)
	})
}

func TestParseDisplayAmount(t *testing.T) {
	tests := []struct {
		name     string
		display  string
		expected float64
		ok       bool
	}{
		{"formato americano", "Available balance ($12.50 USD)", 12.5, true},
		{"formato brasileiro completo", "Saldo disponível (R$1.234,56 BRL)", 1234.56, true},
		{"milhar sem centavos", "Saldo disponível (R$1.234 BRL)", 1234, true},
		{"milhões sem centavos", "Saldo disponível (R$1.234.567 BRL)", 1234567, true},
		{"decimal com dois dígitos", "Saldo disponível (R$1.23 BRL)", 1.23, true},
		{"sem separador", "Saldo disponível (R$500 BRL)", 500, true},
		{"sem valor", "sem valor", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := parseDisplayAmount(tt.display)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, amount)
		})
	}
}
