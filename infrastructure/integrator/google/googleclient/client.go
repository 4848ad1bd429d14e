package googleclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/budget-review-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/budget-review-api/internal/config"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

const scope = "https://www.googleapis.com/auth/adwords"

type Client interface {
	SearchStream(ctx context.Context, customerID, query string) ([]googledomain.Row, error)
}

type GoogleAdsClient struct {
	apiURL          string
	developerToken  string
	loginCustomerID string
	httpClient      *http.Client
}

var _ Client = (*GoogleAdsClient)(nil)

// NewClient cria o cliente REST do Google Ads. O http.Client retornado pelo oauth2 renova o
// access token a partir do refresh token sempre que ele expira.
// base, quando informado, é usado tanto para as chamadas de token quanto para a API.
func NewClient(ctx context.Context, cfg config.Google, base *http.Client) *GoogleAdsClient {
	if base == nil {
		base = &http.Client{Timeout: 60 * time.Second}
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
		Scopes:       []string{scope},
	}

	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, base)
	tokenSource := oauthConfig.TokenSource(tokenCtx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	httpClient := oauth2.NewClient(tokenCtx, tokenSource)
	httpClient.Timeout = base.Timeout

	return &GoogleAdsClient{
		apiURL:          fmt.Sprintf("%s/%s", strings.TrimRight(cfg.BaseURL, "/"), cfg.APIVersion),
		developerToken:  cfg.DeveloperToken,
		loginCustomerID: NormalizeCustomerID(cfg.LoginCustomerID),
		httpClient:      httpClient,
	}
}

// NormalizeCustomerID remove os hífens do formato exibido no painel (123-456-7890)
func NormalizeCustomerID(customerID string) string {
	return strings.ReplaceAll(strings.TrimSpace(customerID), "-", "")
}

type searchRequest struct {
	Query string `json:"query"`
}

// SearchStream executa uma consulta GAQL e junta as linhas de todos os lotes
func (c *GoogleAdsClient) SearchStream(ctx context.Context, customerID, query string) ([]googledomain.Row, error) {
	payload, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, err
	}

	requestURL := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.apiURL, NormalizeCustomerID(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.developerToken)
	if c.loginCustomerID != "" {
		req.Header.Set("login-customer-id", c.loginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, body)
	}

	var batches []googledomain.SearchStreamBatch
	if err := json.Unmarshal(body, &batches); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	rows := make([]googledomain.Row, 0)
	for _, batch := range batches {
		rows = append(rows, batch.Results...)
	}

	return rows, nil
}

// decodeError aceita tanto o objeto de erro quanto o array retornado pelo searchStream
func decodeError(statusCode int, body []byte) error {
	apiErr := &googledomain.APIError{StatusCode: statusCode, Body: string(body)}

	var single googledomain.ErrorResponse
	if err := json.Unmarshal(body, &single); err == nil && single.Error.Message != "" {
		apiErr.Details = single.Error
		return apiErr
	}

	var streamed []googledomain.ErrorResponse
	if err := json.Unmarshal(body, &streamed); err == nil && len(streamed) > 0 {
		apiErr.Details = streamed[0].Error
	}

	return apiErr
}
