package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
)

var (
	ErrMissingToken          = errors.New("token ausente")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// Authorize verifica se as claims pertencem a um dos perfis permitidos
func Authorize(claims *domain.Claims, roles ...domain.Role) error {
	if claims == nil {
		return NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "usuário não autenticado")
	}

	if !claims.HasRole(roles...) {
		return NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, fmt.Sprintf("perfil %d", claims.UserRoleID))
	}

	return nil
}
