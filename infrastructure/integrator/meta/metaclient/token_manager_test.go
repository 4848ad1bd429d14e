package metaclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-review-api/internal/config"
)

type fakeExchanger struct {
	mu       sync.Mutex
	calls    int
	resp     *TokenResponse
	err      error
	received []string
	block    chan struct{}
}

func (f *fakeExchanger) Exchange(_ context.Context, currentToken string) (*TokenResponse, error) {
	f.mu.Lock()
	f.calls++
	f.received = append(f.received, currentToken)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	return f.resp, f.err
}

type fakeStorage struct {
	secrets map[string]string
	err     error
}

func (f *fakeStorage) ListSecrets(context.Context) (map[string]string, error) {
	return f.secrets, nil
}

func (f *fakeStorage) AddOrUpdateSecret(_ context.Context, name, content string) error {
	if f.err != nil {
		return f.err
	}
	if f.secrets == nil {
		f.secrets = map[string]string{}
	}
	f.secrets[name] = content
	return nil
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func TestTokenManager_Refresh(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("sucesso atualiza e persiste o token", func(t *testing.T) {
		clk := &clock{now: start}
		exchanger := &fakeExchanger{resp: &TokenResponse{AccessToken: "novo", ExpiresIn: 60 * 24 * 60 * 60}}
		storage := &fakeStorage{}
		tm := NewTokenManager(config.Meta{LongLivedToken: "antigo"}, exchanger, storage, WithTokenClock(clk.Now))

		require.NoError(t, tm.Refresh(ctx))

		token, err := tm.Token()
		require.NoError(t, err)
		assert.Equal(t, "novo", token)
		assert.Equal(t, []string{"antigo"}, exchanger.received)
		assert.Equal(t, "novo", storage.secrets["meta_access_token"])

		state, _ := tm.State()
		assert.Equal(t, TokenValid, state)
		assert.False(t, tm.NeedsRefresh())
	})

	t.Run("falha suspende novas tentativas até o fim do intervalo", func(t *testing.T) {
		clk := &clock{now: start}
		exchanger := &fakeExchanger{err: errors.New("invalid client secret")}
		tm := NewTokenManager(config.Meta{AccessToken: "atual"}, exchanger, nil,
			WithTokenClock(clk.Now), WithThrottle(15*time.Minute))

		err := tm.Refresh(ctx)
		require.Error(t, err)

		state, until := tm.State()
		assert.Equal(t, TokenThrottled, state)
		assert.Equal(t, start.Add(15*time.Minute), until)

		err = tm.Refresh(ctx)
		assert.ErrorIs(t, err, ErrTokenRefreshThrottled)
		assert.Equal(t, 1, exchanger.calls)

		_, err = tm.Token()
		assert.ErrorIs(t, err, ErrTokenRefreshThrottled)

		clk.now = start.Add(15 * time.Minute)
		state, _ = tm.State()
		assert.Equal(t, TokenValid, state)

		token, err := tm.Token()
		require.NoError(t, err)
		assert.Equal(t, "atual", token)
	})

	t.Run("sem token configurado", func(t *testing.T) {
		tm := NewTokenManager(config.Meta{}, &fakeExchanger{}, nil)

		assert.ErrorIs(t, tm.Refresh(ctx), ErrMissingToken)

		_, err := tm.Token()
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("renovação concorrente é recusada", func(t *testing.T) {
		exchanger := &fakeExchanger{
			resp:  &TokenResponse{AccessToken: "novo"},
			block: make(chan struct{}),
		}
		tm := NewTokenManager(config.Meta{AccessToken: "atual"}, exchanger, nil)

		done := make(chan error)
		go func() { done <- tm.Refresh(ctx) }()

		require.Eventually(t, func() bool {
			state, _ := tm.State()
			return state == TokenRefreshing
		}, time.Second, time.Millisecond)

		token, err := tm.Token()
		require.NoError(t, err)
		assert.Equal(t, "atual", token)
		assert.ErrorIs(t, tm.Refresh(ctx), ErrTokenRefreshInProgress)

		close(exchanger.block)
		require.NoError(t, <-done)

		token, err = tm.Token()
		require.NoError(t, err)
		assert.Equal(t, "novo", token)
	})

	t.Run("falha ao persistir não desfaz a renovação", func(t *testing.T) {
		exchanger := &fakeExchanger{resp: &TokenResponse{AccessToken: "novo"}}
		tm := NewTokenManager(config.Meta{AccessToken: "atual"}, exchanger, &fakeStorage{err: errors.New("render fora")})

		require.NoError(t, tm.Refresh(ctx))
		token, _ := tm.Token()
		assert.Equal(t, "novo", token)
	})
}

func TestTokenManager_EnsureValidToken(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("renova quando expira em menos de 24 horas", func(t *testing.T) {
		clk := &clock{now: start}
		exchanger := &fakeExchanger{resp: &TokenResponse{AccessToken: "novo"}}
		tm := NewTokenManager(config.Meta{AccessToken: "atual", TokenExpiresAt: start.Add(2 * time.Hour)}, exchanger, nil, WithTokenClock(clk.Now))

		token, err := tm.EnsureValidToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "novo", token)
		assert.Equal(t, 1, exchanger.calls)
	})

	t.Run("não renova token com validade longa", func(t *testing.T) {
		clk := &clock{now: start}
		exchanger := &fakeExchanger{}
		tm := NewTokenManager(config.Meta{AccessToken: "atual", TokenExpiresAt: start.Add(72 * time.Hour)}, exchanger, nil, WithTokenClock(clk.Now))

		token, err := tm.EnsureValidToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "atual", token)
		assert.Zero(t, exchanger.calls)
	})

	t.Run("falha na renovação proativa suspende o token", func(t *testing.T) {
		clk := &clock{now: start}
		exchanger := &fakeExchanger{err: errors.New("falhou")}
		tm := NewTokenManager(config.Meta{AccessToken: "atual", TokenExpiresAt: start.Add(time.Hour)}, exchanger, nil, WithTokenClock(clk.Now))

		_, err := tm.EnsureValidToken(ctx)
		assert.ErrorIs(t, err, ErrTokenRefreshThrottled)
	})
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, CalculateTokenExpiration(now, 0).IsZero())
	assert.Equal(t, now.Add(59*24*time.Hour), CalculateTokenExpiration(now, 60*24*60*60))
	assert.Equal(t, now.Add(6*time.Hour), CalculateTokenExpiration(now, 12*60*60))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 dias, 2 horas e 3 minutos", FormatDuration(int64((26*time.Hour+3*time.Minute)/time.Second)))
}
