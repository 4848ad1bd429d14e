package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "active"
	AdAccountStatusInactive AdAccountStatus = "inactive"
)

// AdAccount é uma conta de anúncios (Meta ou Google) vinculada a um cliente
type AdAccount struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"client_id"`
	Platform         Platform        `json:"platform"`
	AccountID        string          `json:"account_id"`
	AccountName      string          `json:"account_name"`
	BudgetAmount     float64         `json:"budget_amount"`
	Status           AdAccountStatus `json:"status"`
	IsPrimary        bool            `json:"is_primary"`
	Balance          *float64        `json:"balance"`
	BalanceUpdatedAt *time.Time      `json:"balance_updated_at"`
	IsPrepay         bool            `json:"is_prepay"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (a *AdAccount) IsActive() bool {
	return a != nil && a.Status == AdAccountStatusActive
}

// AccountBalance é o saldo informado pela plataforma para contas pré-pagas
type AccountBalance struct {
	Amount   float64 `json:"amount"`
	IsPrepay bool    `json:"is_prepay"`
}
