package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMetaReview   = "meta-review"
	CronJobTypeGoogleReview = "google-review"
	CronJobTypeAll          = "all"
)

var cronJobPlatforms = map[string][]domain.Platform{
	CronJobTypeMetaReview:   {domain.PlatformMeta},
	CronJobTypeGoogleReview: {domain.PlatformGoogle},
	CronJobTypeAll:          domain.SupportedPlatforms,
}

// CronRunner é o agendador de revisões exposto para execução manual
type CronRunner interface {
	TriggerManualSync(ctx context.Context, platform domain.Platform) bool
	GetStatus() map[string]any
}

// RunCronJob executa manualmente a revisão agendada de uma ou de todas as plataformas
func RunCronJob(runner CronRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		platforms, ok := cronJobPlatforms[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: meta-review, google-review, all", nil)
			return
		}

		started := make(map[string]bool, len(platforms))
		for _, platform := range platforms {
			started[platform.String()] = runner.TriggerManualSync(r.Context(), platform)
		}

		logrus.WithFields(logrus.Fields{
			"type":    cronType,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	})
}

func GetCronStatus(runner CronRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, runner.GetStatus())
	})
}
