package metadomain

type AdAccountInsight struct {
	AccountID   string `json:"account_id"`
	Name        string `json:"account_name"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
	Impressions string `json:"impressions"`
	Spend       string `json:"spend"`
}

type FundingSourceDetails struct {
	ID            string `json:"id"`
	DisplayString string `json:"display_string"`
	Type          int    `json:"type"`
}

// AdAccountInfo traz os campos de cobrança da conta. Valores monetários vêm em centavos.
type AdAccountInfo struct {
	ID                   string                `json:"id"`
	AccountID            string                `json:"account_id"`
	Name                 string                `json:"name"`
	Currency             string                `json:"currency"`
	Balance              string                `json:"balance"`
	AmountSpent          string                `json:"amount_spent"`
	SpendCap             string                `json:"spend_cap"`
	IsPrepayAccount      bool                  `json:"is_prepay_account"`
	FundingSourceDetails *FundingSourceDetails `json:"funding_source_details,omitempty"`
}
