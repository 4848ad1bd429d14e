package aggregating

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/usecases/budgeting"
)

// Input são as cinco coleções já carregadas do banco para uma plataforma
type Input struct {
	Platform            domain.Platform
	Clients             []*domain.Client
	Accounts            []*domain.AdAccount
	Reviews             []*domain.ReviewSnapshot
	ActiveCustomBudgets []*domain.CustomBudget
	CampaignHealth      []*domain.CampaignHealth
}

type Result struct {
	Clients []domain.ClientAccountView `json:"clients"`
	Metrics domain.PortfolioMetrics    `json:"metrics"`
}

type Aggregator struct {
	policy budgeting.Policy
	now    func() time.Time
}

type Option func(*Aggregator)

func WithPolicy(policy budgeting.Policy) Option {
	return func(a *Aggregator) {
		a.policy = policy
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		policy: budgeting.DefaultPolicy,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Aggregate monta uma linha por (cliente, conta), ou uma linha sem conta para clientes
// sem conta na plataforma. Qualquer panic durante o processamento vira erro e nenhuma linha é retornada.
func (a *Aggregator) Aggregate(in Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("stack", string(debug.Stack())).Errorf("Panic ao agregar contas: %v", r)
			result = nil
			err = fmt.Errorf("erro ao processar contas: %v", r)
		}
	}()

	now := a.now()
	lookups := buildLookups(in, now)

	views := make([]domain.ClientAccountView, 0, len(in.Clients))
	for _, client := range in.Clients {
		if client == nil {
			continue
		}

		accounts := lookups.accountsByClient[client.ID]
		if len(accounts) == 0 {
			views = append(views, noAccountView(client, in.Platform))
			continue
		}

		for _, account := range accounts {
			views = append(views, a.accountView(client, account, in.Platform, lookups, now))
		}
	}

	return &Result{
		Clients: views,
		Metrics: computeMetrics(views),
	}, nil
}

type lookups struct {
	accountsByClient        map[string][]*domain.AdAccount
	reviewsByAccount        map[string]*domain.ReviewSnapshot
	customBudgetsByClient   map[string]*domain.CustomBudget
	campaignHealthByAccount map[string]*domain.CampaignHealth
}

func buildLookups(in Input, now time.Time) lookups {
	l := lookups{
		accountsByClient:        make(map[string][]*domain.AdAccount),
		reviewsByAccount:        make(map[string]*domain.ReviewSnapshot),
		customBudgetsByClient:   make(map[string]*domain.CustomBudget),
		campaignHealthByAccount: make(map[string]*domain.CampaignHealth),
	}

	for _, account := range in.Accounts {
		if account == nil || !matchesPlatform(account.Platform, in.Platform) {
			continue
		}
		l.accountsByClient[account.ClientID] = append(l.accountsByClient[account.ClientID], account)
	}

	// as revisões chegam ordenadas da mais recente para a mais antiga: vale a primeira
	for _, review := range in.Reviews {
		if review == nil || !matchesPlatform(review.Platform, in.Platform) {
			continue
		}
		key := domain.AccountKey(review.ClientID, review.AccountID)
		if _, ok := l.reviewsByAccount[key]; !ok {
			l.reviewsByAccount[key] = review
		}
	}

	for _, cb := range in.ActiveCustomBudgets {
		if cb == nil || !matchesPlatform(cb.Platform, in.Platform) || !cb.Covers(now) {
			continue
		}
		if _, ok := l.customBudgetsByClient[cb.ClientID]; !ok {
			l.customBudgetsByClient[cb.ClientID] = cb
		}
	}

	for _, health := range in.CampaignHealth {
		if health == nil || !matchesPlatform(health.Platform, in.Platform) {
			continue
		}
		key := domain.AccountKey(health.ClientID, health.AccountID)
		if _, ok := l.campaignHealthByAccount[key]; !ok {
			l.campaignHealthByAccount[key] = health
		}
	}

	return l
}

// matchesPlatform aceita registros sem plataforma preenchida e agregações sem filtro de plataforma
func matchesPlatform(value, platform domain.Platform) bool {
	return platform == "" || value == "" || value == platform
}

func (a *Aggregator) accountView(client *domain.Client, account *domain.AdAccount, platform domain.Platform, l lookups, now time.Time) domain.ClientAccountView {
	key := domain.AccountKey(client.ID, account.AccountID)
	review := l.reviewsByAccount[key]
	health := l.campaignHealthByAccount[key]

	view := domain.ClientAccountView{
		ClientID:            client.ID,
		CompanyName:         client.CompanyName,
		Platform:            account.Platform,
		HasAccount:          true,
		AccountID:           account.AccountID,
		AccountName:         account.AccountName,
		IsPrimary:           account.IsPrimary,
		AccountBudgetAmount: account.BudgetAmount,
		BudgetAmount:        account.BudgetAmount,
		Balance:             account.Balance,
		BalanceUpdatedAt:    account.BalanceUpdatedAt,
		IsPrepay:            account.IsPrepay,
	}

	if review != nil {
		r := *review
		view.Review = &r
	}
	if health != nil {
		h := *health
		view.CampaignHealth = &h
	}

	if view.Platform == "" {
		view.Platform = platform
	}

	if review != nil {
		view.DailyBudgetCurrent = review.DailyBudgetCurrent
		view.TotalSpent = review.TotalSpent
		if view.AccountName == "" {
			view.AccountName = review.AccountName
		}
	}

	switch cb := l.customBudgetsByClient[client.ID]; {
	case review.HasCustomBudget():
		view.UsingCustomBudget = true
		view.BudgetAmount = *review.CustomBudgetAmount
		view.CustomBudgetID = review.CustomBudgetID
		view.CustomBudgetAmount = review.CustomBudgetAmount
		view.CustomBudgetStartDate = review.CustomBudgetStartDate
		view.CustomBudgetEndDate = review.CustomBudgetEndDate
	case cb != nil:
		id, amount, start, end := cb.ID, cb.BudgetAmount, cb.StartDate, cb.EndDate
		view.UsingCustomBudget = true
		view.BudgetAmount = amount
		view.CustomBudgetID = &id
		view.CustomBudgetAmount = &amount
		view.CustomBudgetStartDate = &start
		view.CustomBudgetEndDate = &end
	}

	view.BudgetCalculation = a.policy.Calculate(budgeting.PacingInput{
		MonthlyBudget:         view.BudgetAmount,
		TotalSpent:            view.TotalSpent,
		CurrentDailyBudget:    view.DailyBudgetCurrent,
		CustomBudgetStartDate: view.CustomBudgetStartDate,
		CustomBudgetEndDate:   view.CustomBudgetEndDate,
		WarningIgnoredToday:   review.IsWarningIgnoredOn(now),
	}, now)
	view.VeiculationStatus = budgeting.ClassifyDelivery(health)

	return view
}

func noAccountView(client *domain.Client, platform domain.Platform) domain.ClientAccountView {
	return domain.ClientAccountView{
		ClientID:          client.ID,
		CompanyName:       client.CompanyName,
		Platform:          platform,
		HasAccount:        false,
		BudgetCalculation: domain.BudgetCalculation{RemainingDays: 1, Recommendation: domain.RecommendationNone},
		VeiculationStatus: budgeting.NoAccountStatus(),
	}
}

func computeMetrics(views []domain.ClientAccountView) domain.PortfolioMetrics {
	var metrics domain.PortfolioMetrics
	clients := make(map[string]struct{})

	for _, view := range views {
		clients[view.ClientID] = struct{}{}
		if !view.HasAccount {
			metrics.ClientsWithoutAccount++
		}
		if view.BudgetCalculation.NeedsBudgetAdjustment {
			metrics.AccountsNeedingAdjustment++
		}

		metrics.TotalBudget += view.BudgetAmount
		metrics.TotalSpent += view.TotalSpent
	}

	metrics.TotalClients = len(clients)
	if metrics.TotalBudget > 0 {
		metrics.SpentPercentage = metrics.TotalSpent / metrics.TotalBudget * 100
	}

	return metrics
}
