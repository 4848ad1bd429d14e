package reviewing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/infrastructure/repository"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/monitoring"
	"github.com/vfg2006/budget-review-api/internal/usecases/aggregating"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
	"github.com/vfg2006/budget-review-api/pkg/pipeline"
	"github.com/vfg2006/budget-review-api/pkg/utils"
)

type Repositories struct {
	Clients        repository.ClientRepository
	Accounts       repository.AdAccountRepository
	Reviews        repository.ReviewRepository
	CustomBudgets  repository.CustomBudgetRepository
	CampaignHealth repository.CampaignHealthRepository
	BatchLogs      repository.BatchLogRepository
	BatchProgress  repository.BatchProgressRepository
}

type Service struct {
	repos     Repositories
	platforms PlatformClients
	runner    *aggregating.Runner
	metrics   *monitoring.Metrics
	delay     time.Duration
	sleep     pipeline.Sleeper
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithSleeper(sleep pipeline.Sleeper) Option {
	return func(s *Service) {
		s.sleep = sleep
	}
}

func WithRunner(runner *aggregating.Runner) Option {
	return func(s *Service) {
		s.runner = runner
	}
}

// NewService cria o serviço de revisão. delay é o intervalo entre chamadas consecutivas às plataformas.
func NewService(
	repos Repositories,
	platforms PlatformClients,
	delay time.Duration,
	metrics *monitoring.Metrics,
	opts ...Option,
) *Service {
	s := &Service{
		repos:     repos,
		platforms: platforms,
		metrics:   metrics,
		delay:     delay,
		sleep:     pipeline.ContextSleep,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.runner == nil {
		s.runner = aggregating.NewRunner(aggregating.NewAggregator(aggregating.WithClock(s.now)), metrics)
	}

	return s
}

var _ ReviewService = (*Service)(nil)

// ReviewClient revisa uma conta e grava o snapshot do dia. Falhas voltam no resultado, nunca como erro,
// para que o lote continue com os próximos clientes.
func (s *Service) ReviewClient(ctx context.Context, req domain.ReviewRequest) domain.ReviewResult {
	start := time.Now()

	accountID, err := s.safeReviewClient(ctx, req)

	elapsed := time.Since(start)
	result := domain.ReviewResult{
		Success:         err == nil,
		ClientID:        req.ClientID,
		AccountID:       accountID,
		ExecutionTimeMs: elapsed.Milliseconds(),
	}

	logger := logrus.WithFields(logrus.Fields{
		"client_id":         req.ClientID,
		"account_id":        accountID,
		"platform":          req.Platform,
		"execution_time_ms": result.ExecutionTimeMs,
	})

	if err != nil {
		result.Error = err.Error()
		logger.WithField("error", err.Error()).Error("Erro ao revisar cliente")
	} else {
		logger.Info("Revisão do cliente concluída")
	}

	s.metrics.RecordReview(req.Platform.String(), result.Success, elapsed)

	return result
}

// safeReviewClient converte um panic da revisão em falha do cliente
func (s *Service) safeReviewClient(ctx context.Context, req domain.ReviewRequest) (accountID string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"client_id": req.ClientID,
				"platform":  req.Platform,
				"panic":     r,
			}).Error("Panic ao revisar cliente")
			accountID, err = req.AccountID, errors.Errorf("panic ao revisar cliente: %v", r)
		}
	}()

	return s.reviewClient(ctx, req)
}

func (s *Service) reviewClient(ctx context.Context, req domain.ReviewRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return req.AccountID, err
	}

	if !req.Platform.IsValid() {
		return req.AccountID, ErrInvalidPlatform
	}

	if req.ClientID == "" {
		return req.AccountID, ErrClientIDRequired
	}

	client, err := s.platforms.Get(req.Platform)
	if err != nil {
		return req.AccountID, err
	}

	account, err := s.resolveAccount(ctx, req)
	if err != nil {
		return req.AccountID, err
	}

	today := utils.StartOfDay(s.now())

	customBudget, err := s.repos.CustomBudgets.GetActiveCustomBudget(ctx, req.ClientID, req.Platform, today)
	if err != nil {
		return account.AccountID, errors.Wrap(err, "erro ao consultar orçamento personalizado")
	}

	period := domain.DateRange{Start: utils.StartOfMonth(today), End: today}
	if customBudget != nil {
		period.Start = utils.StartOfDay(customBudget.StartDate)
	}

	spend, err := client.FetchSpendAndBudget(ctx, account.AccountID, period)
	if err != nil {
		return account.AccountID, errors.Wrap(err, "erro ao consultar gasto na plataforma")
	}
	if spend == nil {
		spend = &domain.SpendSnapshot{}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return account.AccountID, errors.Wrap(err, "erro ao gerar identificador da revisão")
	}

	snapshot := &domain.ReviewSnapshot{
		ID:                 id,
		ClientID:           req.ClientID,
		Platform:           req.Platform,
		AccountID:          account.AccountID,
		AccountName:        account.AccountName,
		ReviewDate:         today,
		DailyBudgetCurrent: spend.DailyBudget,
		TotalSpent:         spend.TotalSpent,
	}
	snapshot.ApplyCustomBudget(customBudget)

	if err := s.repos.Reviews.UpsertReview(ctx, snapshot); err != nil {
		return account.AccountID, errors.Wrap(err, "erro ao salvar revisão")
	}

	return account.AccountID, nil
}

// resolveAccount usa a conta informada ou, na falta dela, a conta principal do cliente na plataforma
func (s *Service) resolveAccount(ctx context.Context, req domain.ReviewRequest) (*domain.AdAccount, error) {
	if req.AccountID != "" {
		account, err := s.repos.Accounts.GetAccount(ctx, req.ClientID, req.Platform, req.AccountID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao consultar conta do cliente")
		}
		if account == nil {
			return nil, errors.Wrapf(ErrMissingAccount, "conta %s", req.AccountID)
		}
		return account, nil
	}

	account, err := s.repos.Accounts.GetPrimaryAccount(ctx, req.ClientID, req.Platform)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar conta principal do cliente")
	}
	if account == nil {
		return nil, ErrMissingAccount
	}

	return account, nil
}

// IgnoreWarning dispensa o alerta de ajuste do dia para o cliente
func (s *Service) IgnoreWarning(ctx context.Context, clientID string, platform domain.Platform, accountID string) error {
	if clientID == "" {
		return NewReviewError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "Informe o cliente")
	}

	if !platform.IsValid() {
		return NewReviewError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, "Plataforma deve ser meta ou google")
	}

	err := s.repos.Reviews.IgnoreWarning(ctx, clientID, platform, accountID, utils.StartOfDay(s.now()))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewReviewErrorWithClient(ErrMissingAccount, apiErrors.ErrNotFound, clientID, "Nenhuma revisão encontrada para o cliente")
		}

		logrus.WithFields(logrus.Fields{
			"client_id": clientID,
			"platform":  platform,
			"error":     err.Error(),
		}).Error("Erro ao ignorar alerta de ajuste")
		return NewReviewErrorWithClient(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao atualizar a revisão")
	}

	return nil
}
