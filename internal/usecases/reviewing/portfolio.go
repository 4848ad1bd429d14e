package reviewing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/usecases/aggregating"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
)

const defaultLogsLimit = 20

// AccountViews carrega as cinco coleções da plataforma e monta a visão por conta em segundo plano
func (s *Service) AccountViews(ctx context.Context, platform domain.Platform) (*aggregating.Result, error) {
	if !platform.IsValid() {
		return nil, NewReviewError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, platform.String())
	}

	req, err := s.loadAggregationRequest(ctx, platform)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Error("Erro ao carregar dados para agregação")
		return nil, NewReviewError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao carregar dados das contas")
	}

	resp := s.runner.Process(ctx, req)
	if resp.Type == aggregating.MessageError {
		message := ""
		if resp.Error != nil {
			message = resp.Error.Message
		}
		return nil, NewReviewError(ErrAggregation, apiErrors.ErrInternalServer, message)
	}

	return resp.Data, nil
}

func (s *Service) loadAggregationRequest(ctx context.Context, platform domain.Platform) (aggregating.Request, error) {
	clients, err := s.repos.Clients.ListClients(ctx, []domain.ClientStatus{domain.ClientStatusActive})
	if err != nil {
		return aggregating.Request{}, errors.Wrap(err, "clientes")
	}

	accounts, err := s.repos.Accounts.ListAccounts(ctx, platform, []domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return aggregating.Request{}, errors.Wrap(err, "contas")
	}

	reviews, err := s.repos.Reviews.ListLatestReviews(ctx, platform)
	if err != nil {
		return aggregating.Request{}, errors.Wrap(err, "revisões")
	}

	customBudgets, err := s.repos.CustomBudgets.ListActiveCustomBudgets(ctx, platform)
	if err != nil {
		return aggregating.Request{}, errors.Wrap(err, "orçamentos personalizados")
	}

	health, err := s.repos.CampaignHealth.ListLatestCampaignHealth(ctx, platform)
	if err != nil {
		return aggregating.Request{}, errors.Wrap(err, "saúde das campanhas")
	}

	return aggregating.NewRequest(platform, clients, accounts, reviews, customBudgets, health), nil
}

func (s *Service) LatestProgress(ctx context.Context, platform domain.Platform) (*domain.BatchProgress, error) {
	progress, err := s.repos.BatchProgress.GetLatestProgress(ctx, platform)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Erro ao consultar progresso do lote")
		return nil, NewReviewError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar progresso")
	}

	return progress, nil
}

func (s *Service) RecentBatchLogs(ctx context.Context, platform domain.Platform, limit int) ([]*domain.BatchRunRecord, error) {
	if limit <= 0 {
		limit = defaultLogsLimit
	}

	records, err := s.repos.BatchLogs.ListBatchLogs(ctx, platform, limit)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Erro ao consultar logs de revisão em lote")
		return nil, NewReviewError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar logs")
	}

	return records, nil
}
