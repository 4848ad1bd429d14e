package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenExchanger troca o token atual por um novo token de longa duração
type TokenExchanger interface {
	Exchange(ctx context.Context, currentToken string) (*TokenResponse, error)
}

// LongLivedTokenExchanger usa o fluxo fb_exchange_token da Graph API
type LongLivedTokenExchanger struct {
	BaseURL    string
	Version    string
	AppID      string
	AppSecret  string
	HTTPClient *http.Client
}

func (e *LongLivedTokenExchanger) Exchange(ctx context.Context, currentToken string) (*TokenResponse, error) {
	if currentToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", e.AppID)
	params.Add("client_secret", e.AppSecret)
	params.Add("fb_exchange_token", currentToken)

	requestURL := fmt.Sprintf("%s/%s/oauth/access_token?%s", e.BaseURL, e.Version, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	httpClient := e.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo token longa duração. Status: %d", resp.StatusCode)
		return nil, fmt.Errorf("erro ao obter token de longa duração. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration antecipa a expiração em um dia para renovar antes do prazo real
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return time.Time{}
	}

	buffer := int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return now.Add(time.Duration(safeExpiresIn) * time.Second)
}
