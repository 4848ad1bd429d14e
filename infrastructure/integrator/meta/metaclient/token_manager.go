package metaclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/internal/config"
)

const (
	secretAccessToken = "meta_access_token"

	defaultThrottle       = 15 * time.Minute
	proactiveRefresh      = 24 * time.Hour
	autoRefreshInterval   = 23 * time.Hour
	autoRefreshRetryDelay = time.Hour
)

var (
	ErrMissingToken           = errors.New("token de acesso do Meta não configurado")
	ErrTokenRefreshThrottled  = errors.New("renovação do token do Meta suspensa temporariamente")
	ErrTokenRefreshInProgress = errors.New("renovação do token do Meta em andamento")
)

// TokenState é o estado da renovação do token: valid -> refreshing -> valid | throttled
type TokenState int

const (
	TokenValid TokenState = iota
	TokenRefreshing
	TokenThrottled
)

func (s TokenState) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenRefreshing:
		return "refreshing"
	case TokenThrottled:
		return "throttled"
	}
	return "unknown"
}

// TokenManager guarda o token de longa duração e o estado da sua renovação
type TokenManager struct {
	mu             sync.Mutex
	token          string
	expiresAt      time.Time
	state          TokenState
	throttledUntil time.Time

	exchanger TokenExchanger
	storage   config.SecretStorage
	throttle  time.Duration
	now       func() time.Time
}

type TokenManagerOption func(*TokenManager)

func WithThrottle(d time.Duration) TokenManagerOption {
	return func(tm *TokenManager) {
		tm.throttle = d
	}
}

func WithTokenClock(now func() time.Time) TokenManagerOption {
	return func(tm *TokenManager) {
		tm.now = now
	}
}

// NewTokenManager cria o gerenciador a partir da configuração. storage pode ser nil.
func NewTokenManager(cfg config.Meta, exchanger TokenExchanger, storage config.SecretStorage, opts ...TokenManagerOption) *TokenManager {
	token := cfg.LongLivedToken
	if token == "" {
		token = cfg.AccessToken
	}

	tm := &TokenManager{
		token:     token,
		expiresAt: cfg.TokenExpiresAt,
		state:     TokenValid,
		exchanger: exchanger,
		storage:   storage,
		throttle:  defaultThrottle,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(tm)
	}

	return tm
}

// State retorna o estado atual e, se suspenso, até quando
func (tm *TokenManager) State() (TokenState, time.Time) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.expireThrottleLocked()
	return tm.state, tm.throttledUntil
}

func (tm *TokenManager) expireThrottleLocked() {
	if tm.state == TokenThrottled && !tm.now().Before(tm.throttledUntil) {
		tm.state = TokenValid
		tm.throttledUntil = time.Time{}
	}
}

// Token retorna o token atual. Durante a suspensão retorna ErrTokenRefreshThrottled.
func (tm *TokenManager) Token() (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.expireThrottleLocked()

	if tm.state == TokenThrottled {
		return "", fmt.Errorf("%w até %s", ErrTokenRefreshThrottled, tm.throttledUntil.Format(time.RFC3339))
	}

	if tm.token == "" {
		return "", ErrMissingToken
	}

	return tm.token, nil
}

// NeedsRefresh indica se o token expira nas próximas 24 horas
func (tm *TokenManager) NeedsRefresh() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return !tm.expiresAt.IsZero() && tm.expiresAt.Sub(tm.now()) < proactiveRefresh
}

// Refresh troca o token atual por um novo. A troca acontece fora do lock: quem chama Token
// durante a renovação continua recebendo o token anterior. Uma falha suspende novas tentativas
// pelo intervalo configurado.
func (tm *TokenManager) Refresh(ctx context.Context) error {
	tm.mu.Lock()
	tm.expireThrottleLocked()

	switch tm.state {
	case TokenRefreshing:
		tm.mu.Unlock()
		return ErrTokenRefreshInProgress
	case TokenThrottled:
		until := tm.throttledUntil
		tm.mu.Unlock()
		return fmt.Errorf("%w até %s", ErrTokenRefreshThrottled, until.Format(time.RFC3339))
	}

	if tm.token == "" {
		tm.mu.Unlock()
		return ErrMissingToken
	}

	current := tm.token
	tm.state = TokenRefreshing
	tm.mu.Unlock()

	logrus.Info("Iniciando renovação do token do Meta...")
	resp, err := tm.exchanger.Exchange(ctx, current)

	tm.mu.Lock()
	if err != nil {
		tm.state = TokenThrottled
		tm.throttledUntil = tm.now().Add(tm.throttle)
		until := tm.throttledUntil
		tm.mu.Unlock()

		logrus.WithFields(logrus.Fields{
			"error":           err.Error(),
			"throttled_until": until.Format(time.RFC3339),
		}).Error("Erro ao renovar token do Meta")
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	tm.token = resp.AccessToken
	tm.expiresAt = CalculateTokenExpiration(tm.now(), resp.ExpiresIn)
	tm.state = TokenValid
	tm.throttledUntil = time.Time{}
	token, expiresAt := tm.token, tm.expiresAt
	tm.mu.Unlock()

	if !expiresAt.IsZero() {
		logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s", expiresAt.Format(time.RFC3339))
	}

	tm.persist(ctx, token)

	return nil
}

func (tm *TokenManager) persist(ctx context.Context, token string) {
	if tm.storage == nil {
		return
	}

	if err := tm.storage.AddOrUpdateSecret(ctx, secretAccessToken, token); err != nil {
		logrus.WithField("error", err.Error()).Warn("Erro ao persistir token do Meta")
	}
}

// EnsureValidToken renova o token quando ele está perto de expirar. Falhas na renovação
// proativa não impedem o uso do token atual.
func (tm *TokenManager) EnsureValidToken(ctx context.Context) (string, error) {
	if tm.NeedsRefresh() {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		if err := tm.Refresh(ctx); err != nil && !errors.Is(err, ErrTokenRefreshInProgress) {
			logrus.WithField("error", err.Error()).Warn("Renovação proativa do token falhou")
		}
	}

	return tm.Token()
}

// StartAutoRefresh renova o token periodicamente até o contexto ser cancelado
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	ticker := time.NewTicker(autoRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.Refresh(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				ticker.Reset(autoRefreshRetryDelay)
				continue
			}

			logrus.Info("Renovação periódica do token concluída com sucesso")
			ticker.Reset(autoRefreshInterval)
		case <-ctx.Done():
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}
