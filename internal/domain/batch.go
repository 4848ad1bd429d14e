package domain

import "time"

// BatchRunRecord é o registro de auditoria de uma execução em lote. Só é inserido, nunca atualizado.
type BatchRunRecord struct {
	ID                     string         `json:"id"`
	Platform               Platform       `json:"platform"`
	TotalClients           int            `json:"total_clients"`
	SuccessCount           int            `json:"success_count"`
	ErrorCount             int            `json:"error_count"`
	ExecutionTimeMs        int64          `json:"execution_time_ms"`
	GlobalUpdatesPerformed bool           `json:"global_updates_performed"`
	ReviewDate             time.Time      `json:"review_date"`
	FailedClients          []FailedClient `json:"failed_clients"`
	CreatedAt              time.Time      `json:"created_at"`
}

type FailedClient struct {
	ClientID string `json:"client_id"`
	Error    string `json:"error"`
}

type BatchProgressStatus string

const (
	BatchProgressRunning   BatchProgressStatus = "running"
	BatchProgressCompleted BatchProgressStatus = "completed"
	BatchProgressFailed    BatchProgressStatus = "failed"
)

// BatchProgressStaleAfter é a idade a partir da qual um progresso "running" é considerado abandonado
const BatchProgressStaleAfter = 10 * time.Minute

// BatchProgress é o progresso compartilhado de uma execução, consultado pelo painel via polling
type BatchProgress struct {
	ID               string              `json:"id"`
	Platform         Platform            `json:"platform"`
	Status           BatchProgressStatus `json:"status"`
	TotalClients     int                 `json:"total_clients"`
	ProcessedClients int                 `json:"processed_clients"`
	StartedAt        time.Time           `json:"started_at"`
	CompletedAt      *time.Time          `json:"completed_at"`
}

// IsActive indica se a execução está rodando e foi iniciada dentro da janela informada.
// Um registro "running" mais antigo que a janela é tratado como execução abandonada.
func (p *BatchProgress) IsActive(now time.Time, staleAfter time.Duration) bool {
	if p == nil || p.Status != BatchProgressRunning {
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
