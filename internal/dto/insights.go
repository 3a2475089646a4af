package dto

import "github.com/ashwkun/dred-backend/internal/models"

// CategoryTotal is one entry of the top-categories ranking.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// AggregateResult is the full spending aggregate for one user. It is
// recomputed on every request and never persisted.
type AggregateResult struct {
	TotalSpent         float64              `json:"totalSpent"`
	CategoryTotals     map[string]float64   `json:"categoryTotals"`
	TopCategories      []CategoryTotal      `json:"topCategories"`
	MonthlyTotals      map[string]float64   `json:"monthlyTotals"`  // always 12 keys, Jan..Dec
	WeekdayTotal       float64              `json:"weekdayTotal"`
	WeekendTotal       float64              `json:"weekendTotal"`
	DayOfWeekTotals    map[string]float64   `json:"dayOfWeekTotals"` // always 7 keys, Sun..Sat
	RecentTransactions []models.Transaction `json:"recentTransactions"`
}

// RecurringExpense is one merchant flagged as a likely repeating obligation.
type RecurringExpense struct {
	Merchant      string  `json:"merchant"`
	AverageAmount float64 `json:"averageAmount"`
	Category      string  `json:"category"`
	Frequency     string  `json:"frequency"` // FrequencyMonthly or FrequencyOccasional
}

const (
	FrequencyMonthly    = "Monthly"
	FrequencyOccasional = "Occasional"
)

// SummaryResult wraps an aggregate with run metadata for the API.
type SummaryResult struct {
	AnalysisID  string          `json:"analysisId"`
	GeneratedAt string          `json:"generatedAt"`
	Aggregate   AggregateResult `json:"aggregate"`
}

// RecurringResult wraps the recurring candidates with run metadata.
type RecurringResult struct {
	AnalysisID  string             `json:"analysisId"`
	GeneratedAt string             `json:"generatedAt"`
	Items       []RecurringExpense `json:"items"`
}
