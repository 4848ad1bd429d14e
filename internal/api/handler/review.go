package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/usecases/reviewing"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
	"github.com/vfg2006/budget-review-api/pkg/log"
)

const maxReviewBody = 1 << 20

// ReviewFailure é a resposta do ponto de entrada quando a revisão nem chega a ser executada
type ReviewFailure struct {
	Success       bool   `json:"success"`
	Error         string `json:"error"`
	ExecutionTime int64  `json:"executionTime"`
}

// RunReview é o ponto de entrada das revisões single e batch.
// Qualquer falha de validação ou interna responde 500 com {success:false, error, executionTime}.
func RunReview(service reviewing.ReviewService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := log.ForContext(r.Context())

		fail := func(err error) {
			logger.WithField("error", err.Error()).Error("Erro na revisão de orçamentos")
			writeJSON(w, http.StatusInternalServerError, ReviewFailure{
				Success:       false,
				Error:         err.Error(),
				ExecutionTime: time.Since(start).Milliseconds(),
			})
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxReviewBody))
		if err != nil {
			fail(errors.Wrap(err, "erro ao ler corpo da requisição"))
			return
		}

		var invocation *domain.ReviewInvocation
		if len(strings.TrimSpace(string(body))) > 0 {
			invocation = &domain.ReviewInvocation{}
			if err := json.Unmarshal(body, invocation); err != nil {
				fail(reviewing.NewReviewError(reviewing.ErrEmptyRequest, apiErrors.ErrInvalidFormat, err.Error()))
				return
			}
		}

		if invocation != nil {
			logger.WithFields(log.Fields{
				"platform":  invocation.Platform,
				"mode":      invocation.Mode,
				"client_id": invocation.ClientID,
				"clients":   len(invocation.Clients),
			}).Info("Revisão solicitada")
		}

		result, err := service.Invoke(r.Context(), invocation)
		if err != nil {
			fail(err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// ReviewPreflight responde o preflight CORS com 200 e corpo vazio
func ReviewPreflight() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func platformFromQuery(r *http.Request) (domain.Platform, error) {
	return domain.ParsePlatform(r.URL.Query().Get("platform"))
}

func AccountViews(service reviewing.ReviewService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		platform, err := platformFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := service.AccountViews(r.Context(), platform)
		if err != nil {
			log.ForContext(r.Context()).WithField("error", err.Error()).Error("Erro ao montar visão das contas")
			writeServiceError(w, err, "Erro ao montar visão das contas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

type ignoreWarningRequest struct {
	Platform  string `json:"platform"`
	AccountID string `json:"accountId,omitempty"`
}

func IgnoreWarning(service reviewing.ReviewService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("clientId")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cliente não informado", nil)
			return
		}

		var req ignoreWarningRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		platform, err := domain.ParsePlatform(req.Platform)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if err := service.IgnoreWarning(r.Context(), clientID, platform, req.AccountID); err != nil {
			writeServiceError(w, err, "Erro ao ignorar alerta")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"clientId": clientID,
		})
	})
}

func LatestProgress(service reviewing.ReviewService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		platform, err := platformFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		progress, err := service.LatestProgress(r.Context(), platform)
		if err != nil {
			writeServiceError(w, err, "Erro ao consultar progresso")
			return
		}

		// sem execução registrada a resposta é null
		writeJSON(w, http.StatusOK, progress)
	})
}

// BatchLogs lista as execuções recentes. Sem limit usa defaultLimit.
func BatchLogs(service reviewing.ReviewService, defaultLimit int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		platform, err := platformFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := defaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número positivo", nil)
				return
			}
		}

		logs, err := service.RecentBatchLogs(r.Context(), platform, limit)
		if err != nil {
			writeServiceError(w, err, "Erro ao consultar logs")
			return
		}

		writeJSON(w, http.StatusOK, logs)
	})
}
