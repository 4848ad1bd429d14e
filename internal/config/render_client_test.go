package config

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderClient(url string) *RenderClient {
	return &RenderClient{APIKey: "key", ServiceID: "srv-1", BaseURL: url, HTTPClient: http.DefaultClient}
}

func TestNewRenderClient_NotConfigured(t *testing.T) {
	assert.Nil(t, NewRenderClient(&Config{}))
}

func TestRenderClient_LoadSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-1/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"secretFile":{"name":"meta_access_token","content":"abc"}}]`))
	}))
	defer server.Close()

	cfg := &Config{}
	require.NoError(t, LoadSecrets(context.Background(), cfg, newTestRenderClient(server.URL)))
	assert.Equal(t, "abc", cfg.Meta.AccessToken)
}

func TestRenderClient_LoadSecretsKeepsEnvToken(t *testing.T) {
	cfg := &Config{Meta: Meta{AccessToken: "env"}}
	require.NoError(t, LoadSecrets(context.Background(), cfg, nil))
	assert.Equal(t, "env", cfg.Meta.AccessToken)
}

func TestRenderClient_AddOrUpdateSecret(t *testing.T) {
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/services/srv-1/secret-files/meta_access_token", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		body = string(data)
	}))
	defer server.Close()

	err := newTestRenderClient(server.URL).AddOrUpdateSecret(context.Background(), "meta_access_token", "novo")
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"novo"}`, body)
}

func TestRenderClient_AddOrUpdateSecretError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	err := newTestRenderClient(server.URL).AddOrUpdateSecret(context.Background(), "x", "y")
	assert.Error(t, err)
}
