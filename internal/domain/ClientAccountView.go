package domain

import "time"

// ClientAccountView é a linha desnormalizada (cliente x conta) exibida nas tabelas de revisão.
// Não é persistida: é reconstruída a cada agregação.
type ClientAccountView struct {
	ClientID              string            `json:"clientId"`
	CompanyName           string            `json:"companyName"`
	Platform              Platform          `json:"platform"`
	HasAccount            bool              `json:"hasAccount"`
	AccountID             string            `json:"accountId,omitempty"`
	AccountName           string            `json:"accountName,omitempty"`
	IsPrimary             bool              `json:"isPrimary"`
	AccountBudgetAmount   float64           `json:"accountBudgetAmount"`
	BudgetAmount          float64           `json:"budgetAmount"`
	UsingCustomBudget     bool              `json:"usingCustomBudget"`
	CustomBudgetID        *string           `json:"customBudgetId,omitempty"`
	CustomBudgetAmount    *float64          `json:"customBudgetAmount,omitempty"`
	CustomBudgetStartDate *time.Time        `json:"customBudgetStartDate,omitempty"`
	CustomBudgetEndDate   *time.Time        `json:"customBudgetEndDate,omitempty"`
	DailyBudgetCurrent    float64           `json:"dailyBudgetCurrent"`
	TotalSpent            float64           `json:"totalSpent"`
	Balance               *float64          `json:"balance,omitempty"`
	BalanceUpdatedAt      *time.Time        `json:"balanceUpdatedAt,omitempty"`
	IsPrepay              bool              `json:"isPrepay"`
	Review                *ReviewSnapshot   `json:"review"`
	CampaignHealth        *CampaignHealth   `json:"campaignHealth"`
	BudgetCalculation     BudgetCalculation `json:"budgetCalculation"`
	VeiculationStatus     VeiculationStatus `json:"veiculationStatus"`
}

// PortfolioMetrics resume orçamento e gasto de todas as linhas agregadas
type PortfolioMetrics struct {
	TotalBudget               float64 `json:"totalBudget"`
	TotalSpent                float64 `json:"totalSpent"`
	SpentPercentage           float64 `json:"spentPercentage"`
	TotalClients              int     `json:"totalClients"`
	ClientsWithoutAccount     int     `json:"clientsWithoutAccount"`
	AccountsNeedingAdjustment int     `json:"accountsNeedingAdjustment"`
}
