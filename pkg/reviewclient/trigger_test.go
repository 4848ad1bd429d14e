package reviewclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	block    chan struct{}
	reviews  int
	started  bool
	progress *BatchProgress
	sequence []*BatchProgress
	polls    int
}

func (f *fakeClient) ReviewClient(ctx context.Context, platform Platform, clientID string) (*ReviewResult, error) {
	f.mu.Lock()
	f.reviews++
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}
	return &ReviewResult{Success: true, ClientID: clientID}, nil
}

func (f *fakeClient) RunAll(ctx context.Context, platform Platform) (bool, error) {
	return f.started, nil
}

func (f *fakeClient) LatestProgress(ctx context.Context, platform Platform) (*BatchProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.polls++
	if len(f.sequence) > 0 {
		return f.sequence[min(f.polls, len(f.sequence))-1], nil
	}
	return f.progress, nil
}

func (f *fakeClient) pollCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls
}

var triggerNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func TestTrigger_ReviewSingleClientInFlight(t *testing.T) {
	client := &fakeClient{block: make(chan struct{})}
	trigger := NewTrigger(client, PlatformMeta, TriggerConfig{})

	done := make(chan error, 1)
	go func() {
		_, err := trigger.ReviewSingleClient(context.Background(), "c1")
		done <- err
	}()

	require.Eventually(t, func() bool { return trigger.IsReviewing("c1") }, time.Second, 5*time.Millisecond)

	_, err := trigger.ReviewSingleClient(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrReviewInFlight)

	close(client.block)
	require.NoError(t, <-done)
	assert.False(t, trigger.IsReviewing("c1"))

	result, err := trigger.ReviewSingleClient(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", result.ClientID)
	assert.Equal(t, 2, client.reviews)
}

func TestTrigger_IsBatchAnalyzing(t *testing.T) {
	tests := []struct {
		name     string
		progress *BatchProgress
		want     bool
	}{
		{name: "sem progresso", progress: nil, want: false},
		{
			name:     "running recente",
			progress: &BatchProgress{Status: ProgressRunning, StartedAt: triggerNow.Add(-2 * time.Minute)},
			want:     true,
		},
		{
			name:     "running abandonado",
			progress: &BatchProgress{Status: ProgressRunning, StartedAt: triggerNow.Add(-11 * time.Minute)},
			want:     false,
		},
		{
			name:     "concluído",
			progress: &BatchProgress{Status: ProgressCompleted, StartedAt: triggerNow.Add(-time.Minute)},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{progress: tt.progress}
			trigger := NewTrigger(client, PlatformMeta, TriggerConfig{}, WithTriggerClock(func() time.Time { return triggerNow }))

			require.NoError(t, trigger.Refresh(context.Background()))
			assert.Equal(t, tt.want, trigger.IsBatchAnalyzing())
		})
	}
}

func TestTrigger_ReviewAllClientsPollsUntilWindow(t *testing.T) {
	client := &fakeClient{
		started: true,
		progress: &BatchProgress{
			Status:           ProgressRunning,
			TotalClients:     4,
			ProcessedClients: 2,
			StartedAt:        triggerNow,
		},
	}
	trigger := NewTrigger(client, PlatformGoogle, TriggerConfig{
		PollInterval: 10 * time.Millisecond,
		PollWindow:   80 * time.Millisecond,
	}, WithTriggerClock(func() time.Time { return triggerNow.Add(time.Minute) }))

	done, err := trigger.ReviewAllClients(context.Background())
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("polling não terminou dentro da janela")
	}

	assert.GreaterOrEqual(t, client.pollCount(), 2)
	assert.True(t, trigger.IsBatchAnalyzing())
	assert.Equal(t, 0.5, trigger.CompletionRatio())
}

func TestTrigger_StartPollingOnce(t *testing.T) {
	client := &fakeClient{}
	trigger := NewTrigger(client, PlatformMeta, TriggerConfig{PollInterval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	first := trigger.StartPolling(ctx)

	second := trigger.StartPolling(ctx)
	select {
	case <-second:
	default:
		t.Fatal("segundo polling deveria retornar canal fechado")
	}

	cancel()
	<-first
	assert.Nil(t, trigger.Progress())
}

func TestTrigger_BatchAlreadyRunning(t *testing.T) {
	client := &fakeClient{started: false}
	trigger := NewTrigger(client, PlatformMeta, TriggerConfig{PollWindow: 20 * time.Millisecond})

	done, err := trigger.ReviewAllClients(context.Background())
	assert.ErrorIs(t, err, ErrBatchAlreadyRunning)
	<-done
}

func TestTrigger_PollingStopsWhenBatchFinishes(t *testing.T) {
	previous := &BatchProgress{ID: "p0", Status: ProgressCompleted, TotalClients: 2, ProcessedClients: 2, StartedAt: triggerNow.Add(-time.Hour)}
	running := &BatchProgress{ID: "p1", Status: ProgressRunning, TotalClients: 3, ProcessedClients: 1, StartedAt: triggerNow}
	finished := &BatchProgress{ID: "p1", Status: ProgressCompleted, TotalClients: 3, ProcessedClients: 3, StartedAt: triggerNow}

	client := &fakeClient{
		started:  true,
		sequence: []*BatchProgress{previous, running, running, finished, running},
	}
	trigger := NewTrigger(client, PlatformMeta, TriggerConfig{
		PollInterval: 5 * time.Millisecond,
		PollWindow:   time.Minute,
	}, WithTriggerClock(func() time.Time { return triggerNow.Add(time.Minute) }))

	done, err := trigger.ReviewAllClients(context.Background())
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("polling deveria parar quando a execução termina")
	}

	assert.Equal(t, 4, client.pollCount())
	assert.False(t, trigger.IsBatchAnalyzing())
	assert.Equal(t, 1.0, trigger.CompletionRatio())
}

func TestBatchWatch(t *testing.T) {
	completed := func(id string) *BatchProgress { return &BatchProgress{ID: id, Status: ProgressCompleted} }
	running := func(id string) *BatchProgress { return &BatchProgress{ID: id, Status: ProgressRunning} }

	tests := []struct {
		name  string
		polls []*BatchProgress
		want  []bool
	}{
		{
			name:  "execução anterior encerrada não para o polling",
			polls: []*BatchProgress{completed("p0"), completed("p0")},
			want:  []bool{false, false},
		},
		{
			name:  "para quando a execução acompanhada termina",
			polls: []*BatchProgress{running("p1"), running("p1"), completed("p1")},
			want:  []bool{false, false, true},
		},
		{
			name:  "execução rápida encerrada entre duas consultas",
			polls: []*BatchProgress{completed("p0"), completed("p1")},
			want:  []bool{false, true},
		},
		{
			name:  "sem execução registrada",
			polls: []*BatchProgress{nil, nil},
			want:  []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var watch batchWatch
			for i, progress := range tt.polls {
				assert.Equal(t, tt.want[i], watch.finished(progress, nil), "consulta %d", i)
			}
		})
	}

	t.Run("erro de consulta não conta como primeira leitura", func(t *testing.T) {
		var watch batchWatch
		assert.False(t, watch.finished(nil, errors.New("timeout")))
		assert.False(t, watch.finished(completed("p0"), nil))
		assert.True(t, watch.finished(completed("p1"), nil))
	})
}
