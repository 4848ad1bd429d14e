package budgeting

import (
	"time"

	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/pkg/utils"
)

// DefaultThresholdPercent é o desvio (para mais ou para menos) a partir do qual a conta precisa de ajuste
const DefaultThresholdPercent = 10.0

type PacingInput struct {
	MonthlyBudget         float64
	TotalSpent            float64
	CurrentDailyBudget    float64
	CustomBudgetStartDate *time.Time
	CustomBudgetEndDate   *time.Time
	WarningIgnoredToday   bool
}

// Policy define o limite de desvio usado para recomendar ajuste de orçamento
type Policy struct {
	ThresholdPercent float64
}

var DefaultPolicy = Policy{ThresholdPercent: DefaultThresholdPercent}

func NewPolicy(thresholdPercent float64) Policy {
	if thresholdPercent <= 0 {
		return DefaultPolicy
	}

	return Policy{ThresholdPercent: thresholdPercent}
}

// CalculatePacing calcula o ritmo de gasto com o limite padrão de 10%
func CalculatePacing(in PacingInput, now time.Time) domain.BudgetCalculation {
	return DefaultPolicy.Calculate(in, now)
}

// Calculate compara o orçamento diário atual com o orçamento diário ideal para gastar
// o saldo restante até o fim da janela (mês corrente ou orçamento personalizado).
// Não faz I/O: o resultado depende apenas da entrada e de now.
func (p Policy) Calculate(in PacingInput, now time.Time) domain.BudgetCalculation {
	threshold := p.ThresholdPercent
	if threshold <= 0 {
		threshold = DefaultThresholdPercent
	}

	today := utils.StartOfDay(now)
	windowEnd := pacingWindowEnd(in.CustomBudgetStartDate, in.CustomBudgetEndDate, today)

	remainingDays := max(utils.DaysBetween(today, windowEnd), 1)
	remainingBudget := utils.NonNegative(utils.NonNegative(in.MonthlyBudget) - utils.NonNegative(in.TotalSpent))
	idealDailyBudget := remainingBudget / float64(remainingDays)

	currentDailyBudget := utils.NonNegative(in.CurrentDailyBudget)
	budgetDifference := currentDailyBudget - idealDailyBudget

	percent := utils.PercentOf(budgetDifference, idealDailyBudget)

	recommendation := domain.RecommendationNone
	switch {
	case idealDailyBudget <= 0:
	case percent <= -threshold:
		recommendation = domain.RecommendationIncrease
	case percent >= threshold:
		recommendation = domain.RecommendationDecrease
	}

	if in.WarningIgnoredToday {
		recommendation = domain.RecommendationNone
	}

	return domain.BudgetCalculation{
		IdealDailyBudget:        idealDailyBudget,
		BudgetDifference:        budgetDifference,
		BudgetDifferencePercent: percent,
		RemainingDays:           remainingDays,
		RemainingBudget:         remainingBudget,
		NeedsBudgetAdjustment:   recommendation != domain.RecommendationNone,
		Recommendation:          recommendation,
	}
}

// pacingWindowEnd retorna o último dia da janela de gasto.
// O orçamento personalizado vale quando começa no mês corrente ou quando o dia de hoje está dentro dele;
// nos dois casos a data final real é usada, inclusive quando termina em outro mês.
func pacingWindowEnd(customStart, customEnd *time.Time, today time.Time) time.Time {
	monthEnd := utils.EndOfMonth(today)
	if customStart == nil || customEnd == nil {
		return monthEnd
	}

	start := utils.StartOfDay(customStart.In(today.Location()))
	end := utils.StartOfDay(customEnd.In(today.Location()))
	if end.Before(start) {
		return monthEnd
	}

	startsThisMonth := start.Year() == today.Year() && start.Month() == today.Month()
	containsToday := !today.Before(start) && !today.After(end)
	if !startsThisMonth && !containsToday {
		return monthEnd
	}

	return end
}
