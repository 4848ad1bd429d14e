package reviewing

import (
	"context"

	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
)

// Invoke valida o corpo recebido pelo ponto de entrada de revisão e executa o modo pedido.
// Retorna domain.ReviewResult no modo single e *domain.BatchReviewResult no modo batch.
func (s *Service) Invoke(ctx context.Context, invocation *domain.ReviewInvocation) (any, error) {
	if err := ValidateInvocation(invocation); err != nil {
		return nil, err
	}

	platform := domain.Platform(invocation.Platform)

	if invocation.Mode == domain.ReviewModeSingle {
		return s.ReviewClient(ctx, domain.ReviewRequest{
			Platform:  platform,
			ClientID:  invocation.ClientID,
			AccountID: invocation.AccountID,
		}), nil
	}

	req := domain.BatchReviewRequest{
		Platform: platform,
		Clients:  invocation.Clients,
	}
	if invocation.Options != nil {
		req.BatchOptions = *invocation.Options
	}

	return s.ReviewBatch(ctx, req)
}

// ValidateInvocation rejeita a requisição antes de qualquer cliente ser processado
func ValidateInvocation(invocation *domain.ReviewInvocation) error {
	if invocation == nil {
		return NewReviewError(ErrEmptyRequest, apiErrors.ErrInvalidRequest, "")
	}

	if !domain.Platform(invocation.Platform).IsValid() {
		return NewReviewError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, invocation.Platform)
	}

	switch invocation.Mode {
	case domain.ReviewModeSingle:
		if invocation.ClientID == "" {
			return NewReviewError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "")
		}
	case domain.ReviewModeBatch:
		if len(invocation.Clients) == 0 {
			return NewReviewError(ErrClientsRequired, apiErrors.ErrMissingRequiredData, "")
		}
	default:
		return NewReviewError(ErrInvalidMode, apiErrors.ErrInvalidRequest, string(invocation.Mode))
	}

	return nil
}
