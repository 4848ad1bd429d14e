package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/internal/usecases/reviewing"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros do serviço de revisão para o formato padrão da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var reviewErr *reviewing.ReviewError
	if errors.As(err, &reviewErr) && reviewErr.Code != "" {
		apiErrors.WriteError(w, reviewErr.Code, reviewErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
