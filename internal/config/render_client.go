package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const renderBaseURL = "https://api.render.com/v1"

// SecretStorage persiste segredos fora do processo, para que um token renovado sobreviva a reinícios
type SecretStorage interface {
	ListSecrets(ctx context.Context) (map[string]string, error)
	AddOrUpdateSecret(ctx context.Context, secretName, secretContent string) error
}

type AddOrUpdateSecretRequest struct {
	Content string `json:"content"`
}

type RenderClient struct {
	APIKey     string
	ServiceID  string
	BaseURL    string
	HTTPClient *http.Client
}

// NewRenderClient retorna nil quando o Render não está configurado
func NewRenderClient(config *Config) *RenderClient {
	if config.Render.APIKey == "" || config.Render.ServiceID == "" {
		return nil
	}

	return &RenderClient{
		APIKey:     config.Render.APIKey,
		ServiceID:  config.Render.ServiceID,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *RenderClient) ListSecrets(ctx context.Context) (map[string]string, error) {
	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.BaseURL, c.ServiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error list secrets: %s", body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
		Cursor string `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	secretsMap := make(map[string]string)
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = sf.SecretFile.Content
	}

	return secretsMap, nil
}

func (c *RenderClient) AddOrUpdateSecret(ctx context.Context, secretName, secretContent string) error {
	url := fmt.Sprintf("%s/services/%s/secret-files/%s", c.BaseURL, c.ServiceID, secretName)

	jsonData, err := json.Marshal(AddOrUpdateSecretRequest{Content: secretContent})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("config: error add or update secret: %s", body)
	}

	return nil
}

// LoadSecrets preenche o token do Meta a partir do Render quando ele não veio do ambiente
func LoadSecrets(ctx context.Context, cfg *Config, storage SecretStorage) error {
	if storage == nil || cfg.Meta.AccessToken != "" {
		return nil
	}

	secrets, err := storage.ListSecrets(ctx)
	if err != nil {
		return err
	}

	if token, ok := secrets["meta_access_token"]; ok {
		cfg.Meta.AccessToken = token
	}

	return nil
}
