package reviewing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/budget-review-api/internal/domain"
)

var (
	// Erros de validação da requisição
	ErrEmptyRequest     = errors.New("corpo da requisição vazio ou inválido")
	ErrInvalidPlatform  = errors.New("plataforma não suportada")
	ErrInvalidMode      = errors.New("modo de revisão inválido")
	ErrClientIDRequired = errors.New("clientId é obrigatório no modo single")
	ErrClientsRequired  = errors.New("clients deve ser uma lista não vazia no modo batch")

	// Erros por cliente
	ErrMissingCredentials  = errors.New("credenciais da plataforma não configuradas")
	ErrMissingAccount      = errors.New("cliente sem conta de anúncios para a plataforma")
	ErrBalanceNotSupported = domain.ErrBalanceNotSupported

	ErrAggregation       = errors.New("erro ao agregar contas")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ReviewError é um erro com o código da API e o cliente envolvido
type ReviewError struct {
	Err      error
	Code     string
	ClientID string
	Details  string
}

func (e *ReviewError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewReviewError(err error, code string, details string) *ReviewError {
	return &ReviewError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewReviewErrorWithClient(err error, code string, clientID string, details string) *ReviewError {
	return &ReviewError{
		Err:      err,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}

// IsValidationError indica se o erro foi causado pela requisição, antes de qualquer cliente ser processado
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyRequest) ||
		errors.Is(err, ErrInvalidPlatform) ||
		errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrClientIDRequired) ||
		errors.Is(err, ErrClientsRequired)
}
