package meta

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/budget-review-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/budget-review-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/pkg/utils"
)

type MetaIntegrator struct {
	Client metaclient.Client
	now    func() time.Time
}

type Option func(*MetaIntegrator)

func WithClock(now func() time.Time) Option {
	return func(s *MetaIntegrator) {
		s.now = now
	}
}

func New(client metaclient.Client, opts ...Option) *MetaIntegrator {
	s := &MetaIntegrator{
		Client: client,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FetchSpendAndBudget soma o gasto do período e o orçamento diário das campanhas ativas.
// Campanhas sem orçamento próprio usam a soma dos conjuntos de anúncios ativos.
// Uma campanha está veiculando quando teve impressões hoje.
func (s *MetaIntegrator) FetchSpendAndBudget(ctx context.Context, accountID string, period domain.DateRange) (*domain.SpendSnapshot, error) {
	logger := logrus.WithField("account_id", accountID)

	insight, err := s.Client.GetAccountInsights(ctx, accountID, period)
	if err != nil {
		logger.WithField("error", err.Error()).Error("meta: erro ao consultar gasto da conta")
		return nil, err
	}

	campaigns, err := s.Client.GetActiveCampaigns(ctx, accountID)
	if err != nil {
		logger.WithField("error", err.Error()).Error("meta: erro ao consultar campanhas ativas")
		return nil, err
	}

	adSetBudgets := map[string]float64{}
	if needsAdSetBudgets(campaigns) {
		adSets, err := s.Client.GetActiveAdSets(ctx, accountID)
		if err != nil {
			logger.WithField("error", err.Error()).Error("meta: erro ao consultar conjuntos de anúncios")
			return nil, err
		}
		for _, adSet := range adSets {
			adSetBudgets[adSet.CampaignID] += metadomain.MinorUnitsToAmount(adSet.DailyBudget)
		}
	}

	today := utils.StartOfDay(s.now())
	delivering := map[string]metadomain.CampaignInsight{}
	if len(campaigns) > 0 {
		insights, err := s.Client.GetCampaignInsights(ctx, accountID, domain.DateRange{Start: today, End: today})
		if err != nil {
			logger.WithField("error", err.Error()).Error("meta: erro ao consultar veiculação das campanhas")
			return nil, err
		}
		for _, ci := range insights {
			delivering[ci.CampaignID] = ci
		}
	}

	snapshot := &domain.SpendSnapshot{
		TotalSpent: metadomain.ParseAmount(insight.Spend),
		Campaigns:  make([]domain.CampaignDelivery, 0, len(campaigns)),
	}

	for _, campaign := range campaigns {
		budget := metadomain.MinorUnitsToAmount(campaign.DailyBudget)
		if budget == 0 {
			budget = adSetBudgets[campaign.ID]
		}

		ci, ok := delivering[campaign.ID]
		impressions := metadomain.ParseCount(ci.Impressions)

		snapshot.DailyBudget += budget
		snapshot.Campaigns = append(snapshot.Campaigns, domain.CampaignDelivery{
			ID:          campaign.ID,
			Name:        campaign.Name,
			Status:      campaign.EffectiveStatus,
			DailyBudget: budget,
			Spend:       metadomain.ParseAmount(ci.Spend),
			Impressions: impressions,
			Delivering:  ok && impressions > 0,
		})
	}

	snapshot.DailyBudget = utils.RoundWithTwoDecimalPlace(snapshot.DailyBudget)

	logger.WithFields(logrus.Fields{
		"total_spent":  snapshot.TotalSpent,
		"daily_budget": snapshot.DailyBudget,
		"campaigns":    len(snapshot.Campaigns),
	}).Debug("meta: gasto e orçamento consultados")

	return snapshot, nil
}

func needsAdSetBudgets(campaigns []metadomain.Campaign) bool {
	for _, c := range campaigns {
		if metadomain.MinorUnitsToAmount(c.DailyBudget) == 0 {
			return true
		}
	}
	return false
}

// tipo de funding_source_details para saldo pré-pago
const prepaidFundingType = 20

var (
	availableBalance = regexp.MustCompile(`([0-9][0-9.,]*)`)
	dottedThousands  = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{3})+$`)
)

// FetchBalance retorna o saldo disponível de contas pré-pagas ou o valor devido nas pós-pagas
func (s *MetaIntegrator) FetchBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	info, err := s.Client.GetAccountInfo(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: erro ao consultar saldo da conta")
		return nil, err
	}

	if !info.IsPrepayAccount {
		return &domain.AccountBalance{Amount: metadomain.MinorUnitsToAmount(info.Balance)}, nil
	}

	if info.FundingSourceDetails != nil && info.FundingSourceDetails.Type == prepaidFundingType {
		if amount, ok := parseDisplayAmount(info.FundingSourceDetails.DisplayString); ok {
			return &domain.AccountBalance{Amount: amount, IsPrepay: true}, nil
		}
	}

	remaining := utils.NonNegative(metadomain.MinorUnitsToAmount(info.SpendCap) - metadomain.MinorUnitsToAmount(info.AmountSpent))

	return &domain.AccountBalance{Amount: utils.RoundWithTwoDecimalPlace(remaining), IsPrepay: true}, nil
}

// parseDisplayAmount lê o valor de textos como "Saldo disponível (R$1.234,56 BRL)"
func parseDisplayAmount(display string) (float64, bool) {
	match := availableBalance.FindString(display)
	if match == "" {
		return 0, false
	}

	normalized := strings.TrimRight(match, ".,")
	switch {
	case strings.Contains(normalized, ","):
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	case dottedThousands.MatchString(normalized):
		// "1.234" sem vírgula é milhar no formato brasileiro
		normalized = strings.ReplaceAll(normalized, ".", "")
	}

	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}

	return utils.RoundWithTwoDecimalPlace(amount), true
}
