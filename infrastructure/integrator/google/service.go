package google

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/budget-review-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/budget-review-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/pkg/utils"
)

const (
	spendQuery = `SELECT metrics.cost_micros FROM customer WHERE segments.date BETWEEN '%s' AND '%s'`

	activeCampaignsQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign_budget.amount_micros ` +
		`FROM campaign WHERE campaign.status = 'ENABLED' AND campaign.serving_status = 'SERVING'`

	campaignDeliveryQuery = `SELECT campaign.id, metrics.impressions, metrics.cost_micros ` +
		`FROM campaign WHERE campaign.status = 'ENABLED' AND segments.date = '%s'`
)

type GoogleIntegrator struct {
	Client googleclient.Client
	now    func() time.Time
}

type Option func(*GoogleIntegrator)

func WithClock(now func() time.Time) Option {
	return func(s *GoogleIntegrator) {
		s.now = now
	}
}

func New(client googleclient.Client, opts ...Option) *GoogleIntegrator {
	s := &GoogleIntegrator{
		Client: client,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *GoogleIntegrator) FetchSpendAndBudget(ctx context.Context, accountID string, period domain.DateRange) (*domain.SpendSnapshot, error) {
	logger := logrus.WithField("account_id", accountID)

	spendRows, err := s.Client.SearchStream(ctx, accountID, fmt.Sprintf(spendQuery, utils.FormatDate(period.Start), utils.FormatDate(period.End)))
	if err != nil {
		logger.WithField("error", err.Error()).Error("google: erro ao consultar gasto da conta")
		return nil, err
	}

	var totalSpent float64
	for _, row := range spendRows {
		if row.Metrics != nil {
			totalSpent += googledomain.MicrosToAmount(row.Metrics.CostMicros)
		}
	}

	campaignRows, err := s.Client.SearchStream(ctx, accountID, activeCampaignsQuery)
	if err != nil {
		logger.WithField("error", err.Error()).Error("google: erro ao consultar campanhas ativas")
		return nil, err
	}

	delivery := map[string]googledomain.Metrics{}
	if len(campaignRows) > 0 {
		today := utils.FormatDate(s.now())
		deliveryRows, err := s.Client.SearchStream(ctx, accountID, fmt.Sprintf(campaignDeliveryQuery, today))
		if err != nil {
			logger.WithField("error", err.Error()).Error("google: erro ao consultar veiculação das campanhas")
			return nil, err
		}
		for _, row := range deliveryRows {
			if row.Campaign != nil && row.Metrics != nil {
				delivery[row.Campaign.ID] = *row.Metrics
			}
		}
	}

	snapshot := &domain.SpendSnapshot{
		TotalSpent: utils.RoundWithTwoDecimalPlace(totalSpent),
		Campaigns:  make([]domain.CampaignDelivery, 0, len(campaignRows)),
	}

	for _, row := range campaignRows {
		if row.Campaign == nil {
			continue
		}

		var budget float64
		if row.CampaignBudget != nil {
			budget = googledomain.MicrosToAmount(row.CampaignBudget.AmountMicros)
		}

		metrics, ok := delivery[row.Campaign.ID]
		impressions := googledomain.ParseCount(metrics.Impressions)

		snapshot.DailyBudget += budget
		snapshot.Campaigns = append(snapshot.Campaigns, domain.CampaignDelivery{
			ID:          row.Campaign.ID,
			Name:        row.Campaign.Name,
			Status:      row.Campaign.Status,
			DailyBudget: budget,
			Spend:       googledomain.MicrosToAmount(metrics.CostMicros),
			Impressions: impressions,
			Delivering:  ok && impressions > 0,
		})
	}

	snapshot.DailyBudget = utils.RoundWithTwoDecimalPlace(snapshot.DailyBudget)

	logger.WithFields(logrus.Fields{
		"total_spent":  snapshot.TotalSpent,
		"daily_budget": snapshot.DailyBudget,
		"campaigns":    len(snapshot.Campaigns),
	}).Debug("google: gasto e orçamento consultados")

	return snapshot, nil
}

// FetchBalance não se aplica: o Google Ads não expõe saldo da conta
func (s *GoogleIntegrator) FetchBalance(context.Context, string) (*domain.AccountBalance, error) {
	return nil, domain.ErrBalanceNotSupported
}
