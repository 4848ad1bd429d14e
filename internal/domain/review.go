package domain

import (
	"time"

	"github.com/vfg2006/budget-review-api/pkg/utils"
)

// ReviewSnapshot é a revisão diária de uma conta: orçamento diário atual, gasto acumulado
// e, quando houver, o orçamento personalizado vigente no momento da revisão.
// Existe no máximo uma por (cliente, conta, data).
type ReviewSnapshot struct {
	ID                    string     `json:"id"`
	ClientID              string     `json:"client_id"`
	Platform              Platform   `json:"platform"`
	AccountID             string     `json:"account_id"`
	AccountName           string     `json:"account_name"`
	ReviewDate            time.Time  `json:"review_date"`
	DailyBudgetCurrent    float64    `json:"daily_budget_current"`
	TotalSpent            float64    `json:"total_spent"`
	UsingCustomBudget     bool       `json:"using_custom_budget"`
	CustomBudgetID        *string    `json:"custom_budget_id"`
	CustomBudgetAmount    *float64   `json:"custom_budget_amount"`
	CustomBudgetStartDate *time.Time `json:"custom_budget_start_date"`
	CustomBudgetEndDate   *time.Time `json:"custom_budget_end_date"`
	WarningIgnoredToday   bool       `json:"warning_ignored_today"`
	WarningIgnoredDate    *time.Time `json:"warning_ignored_date"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// IsWarningIgnoredOn indica se o alerta de ajuste foi dispensado no mesmo dia de referência
func (r *ReviewSnapshot) IsWarningIgnoredOn(day time.Time) bool {
	if r == nil || !r.WarningIgnoredToday {
		return false
	}

	if r.WarningIgnoredDate == nil {
		return utils.SameDay(r.ReviewDate, day)
	}

	return utils.SameDay(*r.WarningIgnoredDate, day)
}

// HasCustomBudget indica se a revisão carrega os dados de um orçamento personalizado
func (r *ReviewSnapshot) HasCustomBudget() bool {
	return r != nil && r.UsingCustomBudget && r.CustomBudgetAmount != nil
}

// ApplyCustomBudget copia os dados do orçamento personalizado para a revisão
func (r *ReviewSnapshot) ApplyCustomBudget(cb *CustomBudget) {
	if cb == nil {
		r.UsingCustomBudget = false
		r.CustomBudgetID = nil
		r.CustomBudgetAmount = nil
		r.CustomBudgetStartDate = nil
		r.CustomBudgetEndDate = nil
		return
	}

	id := cb.ID
	amount := cb.BudgetAmount
	start := cb.StartDate
	end := cb.EndDate

	r.UsingCustomBudget = true
	r.CustomBudgetID = &id
	r.CustomBudgetAmount = &amount
	r.CustomBudgetStartDate = &start
	r.CustomBudgetEndDate = &end
}
