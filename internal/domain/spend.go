package domain

import (
	"errors"
	"time"
)

// ErrBalanceNotSupported é retornado pelas plataformas que não informam saldo da conta
var ErrBalanceNotSupported = errors.New("plataforma não informa saldo")

// DateRange é um intervalo fechado de datas usado nas consultas às plataformas
type DateRange struct {
	Start time.Time
	End   time.Time
}

type CampaignDelivery struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	DailyBudget float64 `json:"daily_budget"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Delivering  bool    `json:"delivering"`
}

// SpendSnapshot é o retorno do cliente da plataforma de anúncios para uma conta
type SpendSnapshot struct {
	TotalSpent  float64            `json:"total_spent"`
	DailyBudget float64            `json:"daily_budget"`
	Campaigns   []CampaignDelivery `json:"campaigns"`
}

// CampaignCounts retorna a quantidade de campanhas ativas e quantas delas não estão veiculando
func (s *SpendSnapshot) CampaignCounts() (active, unserved int) {
	if s == nil {
		return 0, 0
	}

	for _, c := range s.Campaigns {
		active++
		if !c.Delivering {
			unserved++
		}
	}

	return active, unserved
}
