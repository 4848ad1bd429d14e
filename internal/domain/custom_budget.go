package domain

import (
	"time"

	"github.com/vfg2006/budget-review-api/pkg/utils"
)

// CustomBudget substitui o orçamento mensal da conta dentro de um intervalo de datas
type CustomBudget struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	Platform     Platform  `json:"platform"`
	BudgetAmount float64   `json:"budget_amount"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	IsActive     bool      `json:"is_active"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// Covers indica se o orçamento está ativo e o dia informado está dentro do intervalo (inclusivo)
func (c *CustomBudget) Covers(day time.Time) bool {
	if c == nil || !c.IsActive {
		return false
	}

	d := utils.StartOfDay(day)
	return !d.Before(utils.StartOfDay(c.StartDate)) && !d.After(utils.StartOfDay(c.EndDate))
}
