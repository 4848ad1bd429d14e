package domain

import "time"

// CampaignHealth guarda as contagens de campanhas ativas e sem veiculação de uma conta
type CampaignHealth struct {
	ClientID               string    `json:"client_id"`
	Platform               Platform  `json:"platform"`
	AccountID              string    `json:"account_id"`
	SnapshotDate           time.Time `json:"snapshot_date"`
	ActiveCampaignsCount   int       `json:"active_campaigns_count"`
	UnservedCampaignsCount int       `json:"unserved_campaigns_count"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// AccountKey é a chave "clientId_accountId" usada para cruzar revisões e saúde de campanhas com as contas
func AccountKey(clientID, accountID string) string {
	return clientID + "_" + accountID
}
