package dto

// SpendingSignals are the pre-computed inputs to the spending persona rules.
// BudgetAdherence is a percentage (0-100) supplied by the budgeting layer;
// the remaining fields come from the aggregator.
type SpendingSignals struct {
	BudgetAdherence float64 `json:"budgetAdherence"`
	MonthSpend      float64 `json:"monthSpend"`
	PrevMonthSpend  float64 `json:"prevMonthSpend"`
	FoodSpend       float64 `json:"foodSpend"`
}

// InvestorSignals are the pre-computed inputs to the investor persona rules.
// Consistency is an opaque label ("High", "Medium", "Low") computed upstream.
type InvestorSignals struct {
	TotalInvested   float64 `json:"totalInvested"`
	InstrumentCount int     `json:"instrumentCount"`
	Consistency     string  `json:"consistency"`
}

// Persona is a human-readable behavioural label.
type Persona struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}
