package domain

type BudgetRecommendation string

const (
	RecommendationNone     BudgetRecommendation = "none"
	RecommendationIncrease BudgetRecommendation = "increase"
	RecommendationDecrease BudgetRecommendation = "decrease"
)

// BudgetCalculation é o resultado do cálculo de ritmo de gasto de uma conta
type BudgetCalculation struct {
	IdealDailyBudget        float64              `json:"idealDailyBudget"`
	BudgetDifference        float64              `json:"budgetDifference"`
	BudgetDifferencePercent float64              `json:"budgetDifferencePercent"`
	RemainingDays           int                  `json:"remainingDays"`
	RemainingBudget         float64              `json:"remainingBudget"`
	NeedsBudgetAdjustment   bool                 `json:"needsBudgetAdjustment"`
	Recommendation          BudgetRecommendation `json:"recommendation"`
}

type VeiculationStatusCode string

const (
	VeiculationNoData         VeiculationStatusCode = "no_data"
	VeiculationNoCampaigns    VeiculationStatusCode = "no_campaigns"
	VeiculationAllRunning     VeiculationStatusCode = "all_running"
	VeiculationNoneRunning    VeiculationStatusCode = "none_running"
	VeiculationPartialRunning VeiculationStatusCode = "partial_running"
	// VeiculationNoAccount só é usado na linha de cliente sem conta configurada
	VeiculationNoAccount VeiculationStatusCode = "no_account"
)

type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

type VeiculationStatus struct {
	Status  VeiculationStatusCode `json:"status"`
	Message string                `json:"message"`
	Tone    Tone                  `json:"tone"`
}
