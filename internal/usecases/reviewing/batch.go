package reviewing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
	"github.com/vfg2006/budget-review-api/pkg/pipeline"
	"github.com/vfg2006/budget-review-api/pkg/utils"
)

// ReviewBatch revisa os clientes um por vez, na ordem recebida, com o intervalo configurado entre eles.
// Ao final executa as atualizações globais (a menos que desligadas) e grava um único registro da execução.
// Só retorna erro de validação, antes de qualquer cliente ser processado.
// Depois de iniciado, o lote vai até o fim mesmo que o chamador cancele o contexto.
func (s *Service) ReviewBatch(ctx context.Context, req domain.BatchReviewRequest) (*domain.BatchReviewResult, error) {
	if err := validateBatchRequest(req); err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	total := len(req.Clients)

	logrus.WithFields(logrus.Fields{
		"platform":      req.Platform,
		"total_clients": total,
	}).Info("Iniciando revisão em lote")

	progress := s.startProgress(ctx, req.Platform, total)
	defer func() {
		if r := recover(); r != nil {
			s.finishProgress(ctx, progress, domain.BatchProgressFailed)
			panic(r)
		}
	}()

	result := &domain.BatchReviewResult{
		TotalClients: total,
		Results:      make([]domain.ReviewResult, 0, total),
	}

	clients := pipeline.NewSequential[domain.BatchClient](s.delay, pipeline.WithSleeper[domain.BatchClient](s.sleep))
	clients.Run(ctx, req.Clients, func(ctx context.Context, index int, client domain.BatchClient) {
		review := s.ReviewClient(ctx, domain.ReviewRequest{
			Platform:  req.Platform,
			ClientID:  client.ID,
			AccountID: client.AccountID,
		})

		result.Results = append(result.Results, review)
		if review.Success {
			result.SuccessCount++
		} else {
			result.ErrorCount++
		}

		s.advanceProgress(ctx, progress, index+1)
	})

	if !req.SkipGlobalUpdates {
		result.GlobalUpdatesPerformed = s.runGlobalUpdates(ctx, req.Platform, req.UpdateCampaignHealth)
	}

	s.finishProgress(ctx, progress, domain.BatchProgressCompleted)

	elapsed := time.Since(start)
	result.ExecutionTimeMs = elapsed.Milliseconds()

	s.saveBatchLog(ctx, req.Platform, result)
	s.metrics.RecordBatch(req.Platform.String(), result.SuccessCount, result.ErrorCount, elapsed)

	logrus.WithFields(logrus.Fields{
		"platform":                 req.Platform,
		"total_clients":            result.TotalClients,
		"success_count":            result.SuccessCount,
		"error_count":              result.ErrorCount,
		"global_updates_performed": result.GlobalUpdatesPerformed,
		"execution_time_ms":        result.ExecutionTimeMs,
	}).Info("Revisão em lote concluída")

	return result, nil
}

func validateBatchRequest(req domain.BatchReviewRequest) error {
	if !req.Platform.IsValid() {
		return NewReviewError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, "Plataforma deve ser meta ou google")
	}

	if len(req.Clients) == 0 {
		return NewReviewError(ErrClientsRequired, apiErrors.ErrMissingRequiredData, "Informe ao menos um cliente")
	}

	return nil
}

// saveBatchLog grava o registro da execução. Falhas são apenas registradas no log.
func (s *Service) saveBatchLog(ctx context.Context, platform domain.Platform, result *domain.BatchReviewResult) {
	logger := logrus.WithField("platform", platform)

	id, err := utils.GenerateID()
	if err != nil {
		logger.WithField("error", err.Error()).Error("Erro ao gerar identificador do log do lote")
		return
	}

	record := &domain.BatchRunRecord{
		ID:                     id,
		Platform:               platform,
		TotalClients:           result.TotalClients,
		SuccessCount:           result.SuccessCount,
		ErrorCount:             result.ErrorCount,
		ExecutionTimeMs:        result.ExecutionTimeMs,
		GlobalUpdatesPerformed: result.GlobalUpdatesPerformed,
		ReviewDate:             utils.StartOfDay(s.now()),
		FailedClients:          failedClients(result.Results),
	}

	if err := s.repos.BatchLogs.InsertBatchLog(ctx, record); err != nil {
		logger.WithField("error", err.Error()).Error("Erro ao salvar log da revisão em lote")
	}
}

func failedClients(results []domain.ReviewResult) []domain.FailedClient {
	failed := make([]domain.FailedClient, 0)
	for _, r := range results {
		if !r.Success {
			failed = append(failed, domain.FailedClient{ClientID: r.ClientID, Error: r.Error})
		}
	}
	return failed
}

func (s *Service) startProgress(ctx context.Context, platform domain.Platform, total int) *domain.BatchProgress {
	progress, err := s.repos.BatchProgress.StartProgress(ctx, platform, total)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Warn("Erro ao registrar início do progresso do lote")
		return nil
	}

	return progress
}

func (s *Service) advanceProgress(ctx context.Context, progress *domain.BatchProgress, processed int) {
	if progress == nil {
		return
	}

	if err := s.repos.BatchProgress.AdvanceProgress(ctx, progress.ID, processed); err != nil {
		logrus.WithFields(logrus.Fields{
			"progress_id": progress.ID,
			"error":       err.Error(),
		}).Warn("Erro ao atualizar progresso do lote")
	}
}

func (s *Service) finishProgress(ctx context.Context, progress *domain.BatchProgress, status domain.BatchProgressStatus) {
	if progress == nil {
		return
	}

	if err := s.repos.BatchProgress.FinishProgress(ctx, progress.ID, status); err != nil {
		logrus.WithFields(logrus.Fields{
			"progress_id": progress.ID,
			"status":      status,
			"error":       err.Error(),
		}).Warn("Erro ao finalizar progresso do lote")
	}
}
