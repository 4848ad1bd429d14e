package middleware

import (
	"errors"
	"net/http"

	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
	"github.com/vfg2006/budget-review-api/pkg/log"
)

// RequireRoles restringe a rota aos perfis informados. Depende das claims colocadas no contexto pelo AuthMiddleware.
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if err := authenticating.Authorize(claims, roles...); err != nil {
				code := apiErrors.ErrInsufficientPrivilege
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					code = authErr.Code
				}

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error": err.Error(),
					"path":  r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, code, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// Reviewers são os perfis que podem disparar revisões e consultar o histórico de lotes
func Reviewers() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleSupervisor)
}

func AnyRole() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleSupervisor, domain.RoleClient)
}
