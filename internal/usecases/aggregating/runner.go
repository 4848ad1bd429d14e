package aggregating

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/monitoring"
)

type MessageType string

const (
	MessageProcessMetaData   MessageType = "PROCESS_META_DATA"
	MessageProcessGoogleData MessageType = "PROCESS_GOOGLE_DATA"
	MessageProcessedData     MessageType = "PROCESSED_DATA"
	MessageError             MessageType = "ERROR"
)

var ErrUnknownMessage = errors.New("tipo de mensagem desconhecido")

type Payload struct {
	Clients             []*domain.Client         `json:"clients"`
	MetaAccounts        []*domain.AdAccount      `json:"metaAccounts,omitempty"`
	GoogleAccounts      []*domain.AdAccount      `json:"googleAccounts,omitempty"`
	Reviews             []*domain.ReviewSnapshot `json:"reviews"`
	ActiveCustomBudgets []*domain.CustomBudget   `json:"activeCustomBudgets"`
	CampaignHealthData  []*domain.CampaignHealth `json:"campaignHealthData"`
}

type Request struct {
	Type    MessageType `json:"type"`
	Payload Payload     `json:"payload"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Response carrega Data quando Type é PROCESSED_DATA e Error quando Type é ERROR
type Response struct {
	Type  MessageType
	Data  *Result
	Error *ErrorPayload
}

func (r Response) MarshalJSON() ([]byte, error) {
	var payload any = r.Data
	if r.Type == MessageError {
		payload = r.Error
	}

	return json.Marshal(struct {
		Type    MessageType `json:"type"`
		Payload any         `json:"payload"`
	}{
		Type:    r.Type,
		Payload: payload,
	})
}

func errorResponse(message string) Response {
	return Response{Type: MessageError, Error: &ErrorPayload{Message: message}}
}

// Runner executa a agregação em uma goroutine própria, uma requisição por resposta
type Runner struct {
	aggregator *Aggregator
	metrics    *monitoring.Metrics
}

func NewRunner(aggregator *Aggregator, metrics *monitoring.Metrics) *Runner {
	if aggregator == nil {
		aggregator = NewAggregator()
	}

	return &Runner{
		aggregator: aggregator,
		metrics:    metrics,
	}
}

// Submit copia a entrada e inicia o processamento em segundo plano.
// O canal retornado recebe exatamente uma resposta e é fechado em seguida.
func (r *Runner) Submit(req Request) <-chan Response {
	out := make(chan Response, 1)

	input, err := inputFromRequest(req)
	if err != nil {
		out <- errorResponse(err.Error())
		close(out)
		return out
	}

	go func() {
		defer close(out)
		out <- r.process(input)
	}()

	return out
}

// Process envia a requisição e espera a resposta ou o cancelamento do contexto
func (r *Runner) Process(ctx context.Context, req Request) Response {
	select {
	case resp := <-r.Submit(req):
		return resp
	case <-ctx.Done():
		return errorResponse(ctx.Err().Error())
	}
}

func (r *Runner) process(input Input) Response {
	start := time.Now()

	result, err := r.aggregator.Aggregate(input)
	r.metrics.RecordAggregation(time.Since(start), err)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": input.Platform,
			"error":    err.Error(),
		}).Error("Erro ao agregar contas")
		return errorResponse(err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"platform":          input.Platform,
		"views":             len(result.Clients),
		"execution_time_ms": time.Since(start).Milliseconds(),
	}).Debug("Agregação de contas concluída")

	return Response{Type: MessageProcessedData, Data: result}
}

func inputFromRequest(req Request) (Input, error) {
	input := Input{
		Clients:             slices.Clone(req.Payload.Clients),
		Reviews:             slices.Clone(req.Payload.Reviews),
		ActiveCustomBudgets: slices.Clone(req.Payload.ActiveCustomBudgets),
		CampaignHealth:      slices.Clone(req.Payload.CampaignHealthData),
	}

	switch req.Type {
	case MessageProcessMetaData:
		input.Platform = domain.PlatformMeta
		input.Accounts = slices.Clone(req.Payload.MetaAccounts)
	case MessageProcessGoogleData:
		input.Platform = domain.PlatformGoogle
		input.Accounts = slices.Clone(req.Payload.GoogleAccounts)
	default:
		return Input{}, ErrUnknownMessage
	}

	return input, nil
}

// NewRequest monta a mensagem de processamento para a plataforma informada
func NewRequest(platform domain.Platform, clients []*domain.Client, accounts []*domain.AdAccount, reviews []*domain.ReviewSnapshot, customBudgets []*domain.CustomBudget, health []*domain.CampaignHealth) Request {
	req := Request{
		Type: MessageProcessMetaData,
		Payload: Payload{
			Clients:             clients,
			Reviews:             reviews,
			ActiveCustomBudgets: customBudgets,
			CampaignHealthData:  health,
		},
	}

	if platform == domain.PlatformGoogle {
		req.Type = MessageProcessGoogleData
		req.Payload.GoogleAccounts = accounts
	} else {
		req.Payload.MetaAccounts = accounts
	}

	return req
}
