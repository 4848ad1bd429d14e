package reviewclient

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrReviewInFlight      = errors.New("revisão do cliente já está em andamento")
	ErrBatchAlreadyRunning = errors.New("já existe uma revisão em lote em andamento")
)

const (
	defaultPollInterval = 3 * time.Second
	defaultPollWindow   = 5 * time.Minute
	defaultStaleAfter   = 10 * time.Minute
)

// TriggerConfig controla o polling do progresso. Valores zerados usam os padrões.
type TriggerConfig struct {
	PollInterval time.Duration
	PollWindow   time.Duration
	// StaleAfter é a idade a partir da qual um progresso running é considerado abandonado
	StaleAfter time.Duration
}

// Trigger dispara revisões a partir do painel e acompanha o progresso do lote por polling
type Trigger struct {
	client   Client
	platform Platform
	cfg      TriggerConfig
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
	progress *BatchProgress
	polling  bool
}

type TriggerOption func(*Trigger)

func WithTriggerClock(now func() time.Time) TriggerOption {
	return func(t *Trigger) {
		t.now = now
	}
}

func NewTrigger(client Client, platform Platform, cfg TriggerConfig, opts ...TriggerOption) *Trigger {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.PollWindow <= 0 {
		cfg.PollWindow = defaultPollWindow
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = defaultStaleAfter
	}

	t := &Trigger{
		client:   client,
		platform: platform,
		cfg:      cfg,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ReviewSingleClient revisa um cliente. Um segundo disparo para o mesmo id enquanto o
// primeiro não terminou retorna ErrReviewInFlight sem chamar a API.
func (t *Trigger) ReviewSingleClient(ctx context.Context, clientID string) (*ReviewResult, error) {
	t.mu.Lock()
	if _, running := t.inFlight[clientID]; running {
		t.mu.Unlock()
		return nil, ErrReviewInFlight
	}
	t.inFlight[clientID] = struct{}{}
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.inFlight, clientID)
		t.mu.Unlock()
	}()

	return t.client.ReviewClient(ctx, t.platform, clientID)
}

func (t *Trigger) IsReviewing(clientID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, running := t.inFlight[clientID]
	return running
}

// ReviewAllClients dispara a revisão em lote no servidor e inicia o polling do progresso
func (t *Trigger) ReviewAllClients(ctx context.Context) (<-chan struct{}, error) {
	started, err := t.client.RunAll(ctx, t.platform)
	if err != nil {
		return nil, err
	}

	done := t.StartPolling(ctx)
	if !started {
		return done, ErrBatchAlreadyRunning
	}

	return done, nil
}

// StartPolling consulta o progresso a cada PollInterval até a execução terminar, PollWindow expirar
// ou ctx ser cancelado. Se já houver polling ativo, o canal retornado já vem fechado.
func (t *Trigger) StartPolling(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	t.mu.Lock()
	if t.polling {
		t.mu.Unlock()
		close(done)
		return done
	}
	t.polling = true
	t.mu.Unlock()

	go func() {
		defer close(done)
		defer func() {
			t.mu.Lock()
			t.polling = false
			t.mu.Unlock()
		}()

		pollCtx, cancel := context.WithTimeout(ctx, t.cfg.PollWindow)
		defer cancel()

		ticker := time.NewTicker(t.cfg.PollInterval)
		defer ticker.Stop()

		var watch batchWatch
		for {
			if watch.finished(t.refresh(pollCtx)) {
				return
			}

			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return done
}

// Refresh faz uma consulta avulsa do progresso
func (t *Trigger) Refresh(ctx context.Context) error {
	progress, err := t.client.LatestProgress(ctx, t.platform)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.progress = progress
	t.mu.Unlock()

	return nil
}

func (t *Trigger) refresh(ctx context.Context) (*BatchProgress, error) {
	if err := t.Refresh(ctx); err != nil {
		if ctx.Err() == nil {
			logrus.WithFields(logrus.Fields{
				"platform": t.platform,
				"error":    err.Error(),
			}).Warn("Erro ao consultar progresso da revisão em lote")
		}
		return nil, err
	}

	return t.Progress(), nil
}

// batchWatch decide quando o polling pode parar. Um progresso já encerrado na primeira consulta
// é da execução anterior; o polling só para quando essa execução termina ou outra encerrada aparece.
type batchWatch struct {
	polled     bool
	sawRunning bool
	previousID string
}

func (w *batchWatch) finished(progress *BatchProgress, err error) bool {
	if err != nil {
		return false
	}

	first := !w.polled
	w.polled = true

	if progress == nil {
		return false
	}

	if progress.Status == ProgressRunning {
		w.sawRunning = true
		return false
	}

	if first {
		w.previousID = progress.ID
		return false
	}

	return w.sawRunning || progress.ID != w.previousID
}

// IsBatchAnalyzing é verdadeiro quando o último progresso está running e começou há menos de StaleAfter
func (t *Trigger) IsBatchAnalyzing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.progress.IsActive(t.now(), t.cfg.StaleAfter)
}

func (t *Trigger) CompletionRatio() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.progress.CompletionRatio()
}

func (t *Trigger) Progress() *BatchProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.progress == nil {
		return nil
	}
	progress := *t.progress
	return &progress
}
