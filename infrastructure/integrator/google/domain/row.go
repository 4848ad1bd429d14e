package googledomain

import (
	"strconv"
	"strings"

	"github.com/vfg2006/budget-review-api/pkg/utils"
)

// SearchStreamBatch é cada elemento do array retornado por googleAds:searchStream
type SearchStreamBatch struct {
	Results   []Row  `json:"results"`
	FieldMask string `json:"fieldMask"`
	RequestID string `json:"requestId"`
}

// Row traz apenas os recursos usados nas consultas da revisão. Campos int64 chegam como texto.
type Row struct {
	Customer       *Customer       `json:"customer,omitempty"`
	Campaign       *Campaign       `json:"campaign,omitempty"`
	CampaignBudget *CampaignBudget `json:"campaignBudget,omitempty"`
	Metrics        *Metrics        `json:"metrics,omitempty"`
}

type Customer struct {
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
}

type Campaign struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
}

type CampaignBudget struct {
	AmountMicros string `json:"amountMicros"`
}

type Metrics struct {
	CostMicros  string `json:"costMicros"`
	Impressions string `json:"impressions"`
}

// MicrosToAmount converte valores em micros ("1500000" = 1,50)
func MicrosToAmount(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	micros, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(micros) / 1e6)
}

func ParseCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
