package reviewing

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/usecases/aggregating"
)

// AdPlatformClient é o cliente de uma plataforma de anúncios usado nas revisões
type AdPlatformClient interface {
	// FetchSpendAndBudget retorna o gasto no período, o orçamento diário vigente e as campanhas ativas da conta
	FetchSpendAndBudget(ctx context.Context, accountID string, period domain.DateRange) (*domain.SpendSnapshot, error)

	// FetchBalance retorna o saldo da conta. Plataformas sem saldo retornam ErrBalanceNotSupported.
	FetchBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)
}

// PlatformClients registra um cliente por plataforma. Plataformas sem credenciais ficam fora do mapa.
type PlatformClients map[domain.Platform]AdPlatformClient

func (p PlatformClients) Get(platform domain.Platform) (AdPlatformClient, error) {
	client, ok := p[platform]
	if !ok || client == nil {
		return nil, ErrMissingCredentials
	}

	return client, nil
}

// ReviewService é o ponto de entrada das revisões usado pela API e pelo agendador
type ReviewService interface {
	Invoke(ctx context.Context, invocation *domain.ReviewInvocation) (any, error)
	ReviewClient(ctx context.Context, req domain.ReviewRequest) domain.ReviewResult
	ReviewBatch(ctx context.Context, req domain.BatchReviewRequest) (*domain.BatchReviewResult, error)
	IgnoreWarning(ctx context.Context, clientID string, platform domain.Platform, accountID string) error
	AccountViews(ctx context.Context, platform domain.Platform) (*aggregating.Result, error)
	LatestProgress(ctx context.Context, platform domain.Platform) (*domain.BatchProgress, error)
	RecentBatchLogs(ctx context.Context, platform domain.Platform, limit int) ([]*domain.BatchRunRecord, error)
}
