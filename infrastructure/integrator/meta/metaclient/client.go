package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/budget-review-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

const maxPages = 20

type Client interface {
	GetAccountInsights(ctx context.Context, accountID string, period domain.DateRange) (*metadomain.AdAccountInsight, error)
	GetActiveCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetActiveAdSets(ctx context.Context, accountID string) ([]metadomain.AdSet, error)
	GetCampaignInsights(ctx context.Context, accountID string, period domain.DateRange) ([]metadomain.CampaignInsight, error)
	GetAccountInfo(ctx context.Context, accountID string) (*metadomain.AdAccountInfo, error)
}

type MetaClient struct {
	apiURL       string
	httpClient   *http.Client
	tokenManager *TokenManager
}

// NewClient cria o cliente da Graph API. apiURL já inclui a versão (ex.: https://graph.facebook.com/v22.0).
func NewClient(apiURL string, tokenManager *TokenManager, httpClient *http.Client) *MetaClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &MetaClient{
		apiURL:       strings.TrimRight(apiURL, "/"),
		httpClient:   httpClient,
		tokenManager: tokenManager,
	}
}

var _ Client = (*MetaClient)(nil)

// accountPath aceita o id com ou sem o prefixo act_
func accountPath(accountID string) string {
	return "act_" + strings.TrimPrefix(accountID, "act_")
}

func timeRange(period domain.DateRange) string {
	return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", period.Start.Format(time.DateOnly), period.End.Format(time.DateOnly))
}

// get executa uma consulta GET. Se a API indicar token expirado, renova o token e tenta de novo uma única vez.
func (c *MetaClient) get(ctx context.Context, requestURL string, out any) error {
	body, err := c.do(ctx, requestURL)
	if err != nil {
		var apiErr *tokenExpiredError
		if !errors.As(err, &apiErr) {
			return err
		}

		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d", apiErr.details.Code, apiErr.details.ErrorSubcode)
		if refreshErr := c.tokenManager.Refresh(ctx); refreshErr != nil {
			return fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}

		if body, err = c.do(ctx, requestURL); err != nil {
			return err
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

type tokenExpiredError struct {
	details metadomain.ErrorDetails
}

func (e *tokenExpiredError) Error() string {
	return "token do Meta expirado: " + e.details.Message
}

func (c *MetaClient) do(ctx context.Context, requestURL string) ([]byte, error) {
	token, err := c.tokenManager.EnsureValidToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	parsed, err := url.Parse(requestURL)
	if err != nil {
		return nil, err
	}
	query := parsed.Query()
	query.Set("access_token", token)
	parsed.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
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

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil {
		if errorResp.IsTokenExpired() {
			return nil, &tokenExpiredError{details: errorResp.Error}
		}
		if errorResp.IsRateLimited() {
			logrus.WithFields(logrus.Fields{
				"code":       errorResp.Error.Code,
				"fbtrace_id": errorResp.Error.FBTraceID,
			}).Warn("Limite de chamadas da API Meta atingido")
		}
		return nil, &metadomain.APIError{StatusCode: resp.StatusCode, Details: errorResp.Error, Body: string(body)}
	}

	return nil, &metadomain.APIError{StatusCode: resp.StatusCode, Body: string(body)}
}

type page[T any] struct {
	Data   []T               `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// getAll percorre as páginas seguindo paging.next
func getAll[T any](ctx context.Context, c *MetaClient, requestURL string) ([]T, error) {
	items := make([]T, 0)

	for i := 0; requestURL != "" && i < maxPages; i++ {
		var p page[T]
		if err := c.get(ctx, requestURL, &p); err != nil {
			return nil, err
		}

		items = append(items, p.Data...)
		requestURL = p.Paging.Next
	}

	return items, nil
}

func (c *MetaClient) endpoint(path string, params url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.apiURL, path, params.Encode())
}

func (c *MetaClient) GetAccountInsights(ctx context.Context, accountID string, period domain.DateRange) (*metadomain.AdAccountInsight, error) {
	params := url.Values{}
	params.Add("fields", "account_id,account_name,spend,impressions")
	params.Add("time_range", timeRange(period))

	insights, err := getAll[metadomain.AdAccountInsight](ctx, c, c.endpoint(accountPath(accountID)+"/insights", params))
	if err != nil {
		return nil, err
	}

	// sem gasto no período a API retorna a lista vazia
	if len(insights) == 0 {
		return &metadomain.AdAccountInsight{AccountID: accountID, Spend: "0"}, nil
	}

	return &insights[0], nil
}

func (c *MetaClient) GetActiveCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,daily_budget")
	params.Add("effective_status", "['ACTIVE']")
	params.Add("limit", "200")

	return getAll[metadomain.Campaign](ctx, c, c.endpoint(accountPath(accountID)+"/campaigns", params))
}

func (c *MetaClient) GetActiveAdSets(ctx context.Context, accountID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", "id,campaign_id,effective_status,daily_budget")
	params.Add("effective_status", "['ACTIVE']")
	params.Add("limit", "200")

	return getAll[metadomain.AdSet](ctx, c, c.endpoint(accountPath(accountID)+"/adsets", params))
}

func (c *MetaClient) GetCampaignInsights(ctx context.Context, accountID string, period domain.DateRange) ([]metadomain.CampaignInsight, error) {
	params := url.Values{}
	params.Add("level", "campaign")
	params.Add("fields", "campaign_id,campaign_name,impressions,spend")
	params.Add("time_range", timeRange(period))
	params.Add("limit", "200")

	return getAll[metadomain.CampaignInsight](ctx, c, c.endpoint(accountPath(accountID)+"/insights", params))
}

func (c *MetaClient) GetAccountInfo(ctx context.Context, accountID string) (*metadomain.AdAccountInfo, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name,currency,balance,amount_spent,spend_cap,is_prepay_account,funding_source_details")

	var info metadomain.AdAccountInfo
	if err := c.get(ctx, c.endpoint(accountPath(accountID), params), &info); err != nil {
		return nil, err
	}

	return &info, nil
}
