package domain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReviewMode string

const (
	ReviewModeSingle ReviewMode = "single"
	ReviewModeBatch  ReviewMode = "batch"
)

// ReviewRequest é a revisão de um único cliente. AccountID vazio usa a conta principal.
type ReviewRequest struct {
	Platform  Platform `json:"platform"`
	ClientID  string   `json:"clientId"`
	AccountID string   `json:"accountId,omitempty"`
}

type ReviewResult struct {
	Success         bool   `json:"success"`
	ClientID        string `json:"clientId"`
	AccountID       string `json:"accountId,omitempty"`
	Error           string `json:"error,omitempty"`
	ExecutionTimeMs int64  `json:"executionTimeMs"`
}

// BatchClient aceita tanto "id" quanto {"id": "...", "accountId": "..."} na lista de clientes
type BatchClient struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId,omitempty"`
}

func (c *BatchClient) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		c.ID = id
		c.AccountID = ""
		return nil
	}

	var raw struct {
		ID        string `json:"id"`
		ClientID  string `json:"clientId"`
		AccountID string `json:"accountId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	if c.ID == "" {
		c.ID = raw.ClientID
	}
	c.AccountID = raw.AccountID

	return nil
}

type BatchOptions struct {
	SkipGlobalUpdates    bool `json:"skipGlobalUpdates"`
	UpdateCampaignHealth bool `json:"updateCampaignHealth"`
}

type BatchReviewRequest struct {
	Platform Platform      `json:"platform"`
	Clients  []BatchClient `json:"clients"`
	BatchOptions
}

type BatchReviewResult struct {
	TotalClients           int            `json:"totalClients"`
	SuccessCount           int            `json:"successCount"`
	ErrorCount             int            `json:"errorCount"`
	Results                []ReviewResult `json:"results"`
	ExecutionTimeMs        int64          `json:"executionTimeMs"`
	GlobalUpdatesPerformed bool           `json:"globalUpdatesPerformed"`
}

// ReviewInvocation é o corpo aceito pelo ponto de entrada HTTP de revisão
type ReviewInvocation struct {
	Platform  string        `json:"platform"`
	Mode      ReviewMode    `json:"mode"`
	ClientID  string        `json:"clientId,omitempty"`
	AccountID string        `json:"accountId,omitempty"`
	Clients   []BatchClient `json:"clients,omitempty"`
	Options   *BatchOptions `json:"options,omitempty"`
}
