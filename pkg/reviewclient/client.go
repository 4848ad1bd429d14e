package reviewclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/pkg/log"
)

// Client é a parte da API de revisão usada pelo painel
type Client interface {
	ReviewClient(ctx context.Context, platform Platform, clientID string) (*ReviewResult, error)
	RunAll(ctx context.Context, platform Platform) (bool, error)
	LatestProgress(ctx context.Context, platform Platform) (*BatchProgress, error)
}

type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient cria o cliente da API. token é o JWT enviado como Bearer.
func NewClient(baseURL, token string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Minute}
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

var _ Client = (*HTTPClient)(nil)

// ResponseError é devolvido quando a API responde fora da faixa 2xx
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api de revisão respondeu %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api de revisão respondeu %d: %s", e.StatusCode, e.Message)
}

func (c *HTTPClient) ReviewClient(ctx context.Context, platform Platform, clientID string) (*ReviewResult, error) {
	invocation := reviewInvocation{
		Platform: platform.String(),
		Mode:     "single",
		ClientID: clientID,
	}

	var result ReviewResult
	if err := c.send(ctx, http.MethodPost, "/v1/reviews", nil, invocation, &result); err != nil {
		return nil, errors.Wrapf(err, "erro ao revisar cliente %s", clientID)
	}

	return &result, nil
}

// RunAll dispara a revisão de todos os clientes da plataforma.
// Retorna false quando já havia uma execução em andamento no servidor.
func (c *HTTPClient) RunAll(ctx context.Context, platform Platform) (bool, error) {
	var response struct {
		Started map[string]bool `json:"started"`
	}

	path := fmt.Sprintf("/v1/cron/%s-review/run", platform)
	if err := c.send(ctx, http.MethodPost, path, nil, nil, &response); err != nil {
		return false, errors.Wrap(err, "erro ao disparar revisão em lote")
	}

	return response.Started[platform.String()], nil
}

// LatestProgress retorna nil quando a plataforma ainda não teve execução registrada
func (c *HTTPClient) LatestProgress(ctx context.Context, platform Platform) (*BatchProgress, error) {
	query := url.Values{}
	query.Set("platform", platform.String())

	var progress *BatchProgress
	if err := c.send(ctx, http.MethodGet, "/v1/reviews/progress", query, nil, &progress); err != nil {
		return nil, errors.Wrap(err, "erro ao consultar progresso")
	}

	return progress, nil
}

func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return err
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	correlationID := log.GetCorrelationID(ctx)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	req.Header.Set(log.CorrelationIDHeader, correlationID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta da API de revisão")
		return err
	}

	return nil
}

// decodeError entende tanto o formato padrão de erros quanto o {success:false, error} do ponto de revisão
func decodeError(status int, body []byte) error {
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	respErr := &ResponseError{StatusCode: status, Message: strings.TrimSpace(string(body))}
	if err := json.Unmarshal(body, &payload); err != nil {
		return respErr
	}

	respErr.Code = payload.Code
	switch {
	case payload.Error != "":
		respErr.Message = payload.Error
	case payload.Message != "":
		respErr.Message = payload.Message
	}

	return respErr
}
