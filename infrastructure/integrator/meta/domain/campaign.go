package metadomain

import (
	"strconv"
	"strings"

	"github.com/vfg2006/budget-review-api/pkg/utils"
)

type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
}

// AdSet só é consultado para campanhas sem orçamento no nível da campanha
type AdSet struct {
	ID              string `json:"id"`
	CampaignID      string `json:"campaign_id"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type CampaignInsight struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`
	Impressions  string `json:"impressions"`
	Spend        string `json:"spend"`
}

// ParseAmount converte os valores decimais em texto da API ("123.45")
func ParseAmount(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(f)
}

// MinorUnitsToAmount converte valores em centavos ("15000" = 150,00)
func MinorUnitsToAmount(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(f / 100)
}

func ParseCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
