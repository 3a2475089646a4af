package dto

// ProjectionPoint is one year of a projection series. Total always equals
// Invested + Returns within floating-point tolerance.
type ProjectionPoint struct {
	Period   int     `json:"period"` // years from start, 0..N
	Invested float64 `json:"invested"`
	Returns  float64 `json:"returns"`
	Total    float64 `json:"total"`
}

// GrowthProjectionRequest asks for lump-sum plus monthly-contribution growth
// across one or more annual return rates.
type GrowthProjectionRequest struct {
	CurrentValue        float64   `json:"currentValue"`
	MonthlyContribution float64   `json:"monthlyContribution"`
	Rates               []float64 `json:"rates"` // annual rates, e.g. 0.08
	Years               int       `json:"years"`
}

// GrowthProjectionResult maps each requested rate (formatted as its decimal
// string, e.g. "0.08") to its independent series.
type GrowthProjectionResult struct {
	Series map[string][]ProjectionPoint `json:"series"`
}

// SipProjectionRequest asks for a systematic-investment growth series at a
// single annual return.
type SipProjectionRequest struct {
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualReturn        float64 `json:"annualReturn"`
	Years               int     `json:"years"`
}

// SipProjectionResult is one point per year, year 0 included as the zero
// baseline.
type SipProjectionResult struct {
	Series []ProjectionPoint `json:"series"`
}
