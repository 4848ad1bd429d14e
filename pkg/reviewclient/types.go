package reviewclient

import "time"

type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

func (p Platform) String() string {
	return string(p)
}

// ReviewResult é a resposta da API para a revisão de um cliente
type ReviewResult struct {
	Success         bool   `json:"success"`
	ClientID        string `json:"clientId"`
	AccountID       string `json:"accountId,omitempty"`
	Error           string `json:"error,omitempty"`
	ExecutionTimeMs int64  `json:"executionTimeMs"`
}

type reviewInvocation struct {
	Platform string `json:"platform"`
	Mode     string `json:"mode"`
	ClientID string `json:"clientId,omitempty"`
}

type ProgressStatus string

const (
	ProgressRunning   ProgressStatus = "running"
	ProgressCompleted ProgressStatus = "completed"
	ProgressFailed    ProgressStatus = "failed"
)

// BatchProgress é o progresso da última execução em lote da plataforma
type BatchProgress struct {
	ID               string         `json:"id"`
	Platform         Platform       `json:"platform"`
	Status           ProgressStatus `json:"status"`
	TotalClients     int            `json:"total_clients"`
	ProcessedClients int            `json:"processed_clients"`
	StartedAt        time.Time      `json:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at"`
}

// IsActive indica se a execução está running e começou há menos de staleAfter
func (p *BatchProgress) IsActive(now time.Time, staleAfter time.Duration) bool {
	if p == nil || p.Status != ProgressRunning {
		return false
	}

	return now.Sub(p.StartedAt) < staleAfter
}

func (p *BatchProgress) CompletionRatio() float64 {
	if p == nil || p.TotalClients <= 0 {
		return 0
	}

	ratio := float64(p.ProcessedClients) / float64(p.TotalClients)
	if ratio > 1 {
		return 1
	}

	return ratio
}
