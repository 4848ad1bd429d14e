package google

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googledomain "github.com/vfg2006/budget-review-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/budget-review-api/infrastructure/integrator/google/mocks"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func newIntegrator(t *testing.T) (*GoogleIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	return New(client, WithClock(func() time.Time { return fixedNow })), client
}

type queryMatcher string

func (m queryMatcher) Matches(x any) bool {
	q, ok := x.(string)
	return ok && strings.Contains(q, string(m))
}

func (m queryMatcher) String() string {
	return "query contendo " + string(m)
}

func queryContaining(fragment string) gomock.Matcher {
	return queryMatcher(fragment)
}

func TestFetchSpendAndBudget(t *testing.T) {
	ctx := context.Background()
	period := domain.DateRange{Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), End: fixedNow}

	t.Run("converte micros e marca campanhas sem impressões", func(t *testing.T) {
		integrator, client := newIntegrator(t)

		client.EXPECT().SearchStream(ctx, "123-456-7890", queryContaining("BETWEEN '2025-03-01' AND '2025-03-10'")).
			Return([]googledomain.Row{
				{Metrics: &googledomain.Metrics{CostMicros: "1200000000"}},
				{Metrics: &googledomain.Metrics{CostMicros: "345670000"}},
			}, nil)
		client.EXPECT().SearchStream(ctx, "123-456-7890", queryContaining("campaign_budget.amount_micros")).
			Return([]googledomain.Row{
				{Campaign: &googledomain.Campaign{ID: "1", Name: "Pesquisa", Status: "ENABLED"}, CampaignBudget: &googledomain.CampaignBudget{AmountMicros: "50000000"}},
				{Campaign: &googledomain.Campaign{ID: "2", Name: "Display", Status: "ENABLED"}, CampaignBudget: &googledomain.CampaignBudget{AmountMicros: "25500000"}},
			}, nil)
		client.EXPECT().SearchStream(ctx, "123-456-7890", queryContaining("segments.date = '2025-03-10'")).
			Return([]googledomain.Row{
				{Campaign: &googledomain.Campaign{ID: "1"}, Metrics: &googledomain.Metrics{Impressions: "87", CostMicros: "12340000"}},
			}, nil)

		snapshot, err := integrator.FetchSpendAndBudget(ctx, "123-456-7890", period)
		require.NoError(t, err)

		assert.Equal(t, 1545.67, snapshot.TotalSpent)
		assert.Equal(t, 75.5, snapshot.DailyBudget)
		require.Len(t, snapshot.Campaigns, 2)
		assert.True(t, snapshot.Campaigns[0].Delivering)
		assert.Equal(t, 12.34, snapshot.Campaigns[0].Spend)
		assert.False(t, snapshot.Campaigns[1].Delivering)
	})

	t.Run("erro na consulta de gasto", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		apiErr := &googledomain.APIError{StatusCode: 403, Details: googledomain.ErrorDetails{Status: "PERMISSION_DENIED"}}

		client.EXPECT().SearchStream(ctx, "1", gomock.Any()).Return(nil, apiErr)

		snapshot, err := integrator.FetchSpendAndBudget(ctx, "1", period)
		assert.ErrorIs(t, err, apiErr)
		assert.Nil(t, snapshot)
	})

	t.Run("sem campanhas ativas", func(t *testing.T) {
		integrator, client := newIntegrator(t)

		client.EXPECT().SearchStream(ctx, "1", queryContaining("FROM customer")).Return(nil, nil)
		client.EXPECT().SearchStream(ctx, "1", queryContaining("serving_status")).Return([]googledomain.Row{}, nil)

		snapshot, err := integrator.FetchSpendAndBudget(ctx, "1", period)
		require.NoError(t, err)
		assert.Zero(t, snapshot.TotalSpent)
		assert.Empty(t, snapshot.Campaigns)
	})
}

func TestFetchBalance_NotSupported(t *testing.T) {
	integrator, _ := newIntegrator(t)

	balance, err := integrator.FetchBalance(context.Background(), "1")
	assert.True(t, errors.Is(err, domain.ErrBalanceNotSupported))
	assert.Nil(t, balance)
}
