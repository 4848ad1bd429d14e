package budgeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// dia 10 de um mês com 30 dias
var june10 = time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

func TestCalculatePacing(t *testing.T) {
	tests := []struct {
		name     string
		input    PacingInput
		now      time.Time
		validate func(t *testing.T, result domain.BudgetCalculation)
	}{
		{
			name:  "Orçamento diário abaixo do ideal - recomenda aumentar",
			input: PacingInput{MonthlyBudget: 3000, TotalSpent: 1000, CurrentDailyBudget: 50},
			now:   june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 2000.0, result.RemainingBudget)
				assert.Equal(t, 20, result.RemainingDays)
				assert.Equal(t, 100.0, result.IdealDailyBudget)
				assert.Equal(t, -50.0, result.BudgetDifference)
				assert.Equal(t, -50.0, result.BudgetDifferencePercent)
				assert.True(t, result.NeedsBudgetAdjustment)
				assert.Equal(t, domain.RecommendationIncrease, result.Recommendation)
			},
		},
		{
			name:  "Orçamento diário igual ao ideal - sem ajuste",
			input: PacingInput{MonthlyBudget: 3000, TotalSpent: 1000, CurrentDailyBudget: 100},
			now:   june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 0.0, result.BudgetDifferencePercent)
				assert.False(t, result.NeedsBudgetAdjustment)
				assert.Equal(t, domain.RecommendationNone, result.Recommendation)
			},
		},
		{
			name:  "Desvio de exatamente -10% - precisa de ajuste",
			input: PacingInput{MonthlyBudget: 3000, TotalSpent: 1000, CurrentDailyBudget: 90},
			now:   june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, -10.0, result.BudgetDifferencePercent)
				assert.True(t, result.NeedsBudgetAdjustment)
				assert.Equal(t, domain.RecommendationIncrease, result.Recommendation)
			},
		},
		{
			name:  "Desvio de exatamente +10% - precisa de ajuste",
			input: PacingInput{MonthlyBudget: 3000, TotalSpent: 1000, CurrentDailyBudget: 110},
			now:   june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 10.0, result.BudgetDifferencePercent)
				assert.True(t, result.NeedsBudgetAdjustment)
				assert.Equal(t, domain.RecommendationDecrease, result.Recommendation)
			},
		},
		{
			name:  "Desvio de -9,99% - dentro da margem",
			input: PacingInput{MonthlyBudget: 3000, TotalSpent: 1000, CurrentDailyBudget: 90.01},
			now:   june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.InDelta(t, -9.99, result.BudgetDifferencePercent, 0.0001)
				assert.False(t, result.NeedsBudgetAdjustment)
			},
		},
		{
			name:  "Desvio de +9,99% - dentro da margem",
			input: PacingInput{MonthlyBudget: 3000, TotalSpent: 1000, CurrentDailyBudget: 109.99},
			now:   june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.InDelta(t, 9.99, result.BudgetDifferencePercent, 0.0001)
				assert.False(t, result.NeedsBudgetAdjustment)
			},
		},
		{
			name: "Alerta ignorado hoje - suprime o ajuste",
			input: PacingInput{
				MonthlyBudget:       3000,
				TotalSpent:          1000,
				CurrentDailyBudget:  10,
				WarningIgnoredToday: true,
			},
			now: june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, -90.0, result.BudgetDifferencePercent)
				assert.False(t, result.NeedsBudgetAdjustment)
				assert.Equal(t, domain.RecommendationNone, result.Recommendation)
			},
		},
		{
			name:  "Orçamento mensal zero - sem sinal de ajuste",
			input: PacingInput{MonthlyBudget: 0, TotalSpent: 0, CurrentDailyBudget: 500},
			now:   june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 0.0, result.RemainingBudget)
				assert.Equal(t, 0.0, result.IdealDailyBudget)
				assert.Equal(t, 0.0, result.BudgetDifferencePercent)
				assert.False(t, result.NeedsBudgetAdjustment)
			},
		},
		{
			name:  "Gasto acima do orçamento - saldo restante nunca negativo",
			input: PacingInput{MonthlyBudget: 1000, TotalSpent: 1500, CurrentDailyBudget: 80},
			now:   june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 0.0, result.RemainingBudget)
				assert.Equal(t, 0.0, result.IdealDailyBudget)
				assert.False(t, result.NeedsBudgetAdjustment)
			},
		},
		{
			name:  "Último dia do mês - restam no mínimo 1 dia",
			input: PacingInput{MonthlyBudget: 3000, TotalSpent: 2900, CurrentDailyBudget: 100},
			now:   time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 1, result.RemainingDays)
				assert.Equal(t, 100.0, result.IdealDailyBudget)
				assert.False(t, result.NeedsBudgetAdjustment)
			},
		},
		{
			name: "Orçamento personalizado iniciado no mês - usa a data final do orçamento",
			input: PacingInput{
				MonthlyBudget:         1500,
				TotalSpent:            500,
				CurrentDailyBudget:    100,
				CustomBudgetStartDate: datePtr(2024, 6, 1),
				CustomBudgetEndDate:   datePtr(2024, 6, 20),
			},
			now: june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 10, result.RemainingDays)
				assert.Equal(t, 100.0, result.IdealDailyBudget)
				assert.False(t, result.NeedsBudgetAdjustment)
			},
		},
		{
			name: "Orçamento personalizado atravessando meses - conta os dias até a data final real",
			input: PacingInput{
				MonthlyBudget:         4000,
				TotalSpent:            0,
				CurrentDailyBudget:    100,
				CustomBudgetStartDate: datePtr(2024, 5, 20),
				CustomBudgetEndDate:   datePtr(2024, 7, 20),
			},
			now: june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 40, result.RemainingDays)
				assert.Equal(t, 100.0, result.IdealDailyBudget)
			},
		},
		{
			name: "Orçamento personalizado já encerrado em outro mês - volta para o mês corrente",
			input: PacingInput{
				MonthlyBudget:         3000,
				TotalSpent:            1000,
				CurrentDailyBudget:    100,
				CustomBudgetStartDate: datePtr(2024, 4, 1),
				CustomBudgetEndDate:   datePtr(2024, 4, 30),
			},
			now: june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 20, result.RemainingDays)
			},
		},
		{
			name: "Orçamento personalizado com data final já passada no mês - restam no mínimo 1 dia",
			input: PacingInput{
				MonthlyBudget:         1000,
				TotalSpent:            400,
				CurrentDailyBudget:    100,
				CustomBudgetStartDate: datePtr(2024, 6, 1),
				CustomBudgetEndDate:   datePtr(2024, 6, 5),
			},
			now: june10,
			validate: func(t *testing.T, result domain.BudgetCalculation) {
				assert.Equal(t, 1, result.RemainingDays)
				assert.Equal(t, 600.0, result.IdealDailyBudget)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculatePacing(tt.input, tt.now))
		})
	}
}

func TestCalculatePacing_Invariants(t *testing.T) {
	budgets := []float64{0, 1, 100, 3000, 12345.67}
	spends := []float64{0, 1, 99, 3000, 50000}
	dailies := []float64{0, 10, 100, 1000}
	days := []time.Time{
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
		june10,
	}

	for _, budget := range budgets {
		for _, spent := range spends {
			for _, daily := range dailies {
				for _, now := range days {
					in := PacingInput{MonthlyBudget: budget, TotalSpent: spent, CurrentDailyBudget: daily}
					result := CalculatePacing(in, now)

					assert.GreaterOrEqual(t, result.RemainingBudget, 0.0)
					assert.GreaterOrEqual(t, result.RemainingDays, 1)
					if result.RemainingBudget == 0 {
						assert.Equal(t, 0.0, result.IdealDailyBudget)
						assert.False(t, result.NeedsBudgetAdjustment)
					}
					assert.Equal(t, result, CalculatePacing(in, now), "mesma entrada deve gerar o mesmo resultado")
				}
			}
		}
	}
}

func TestPolicy_CustomThreshold(t *testing.T) {
	in := PacingInput{MonthlyBudget: 3000, TotalSpent: 1000, CurrentDailyBudget: 85}

	assert.True(t, NewPolicy(10).Calculate(in, june10).NeedsBudgetAdjustment)
	assert.False(t, NewPolicy(20).Calculate(in, june10).NeedsBudgetAdjustment)
	assert.Equal(t, DefaultPolicy, NewPolicy(0))
}
