// backend/src/processors/scoring_config.go
package processors

// ScoringConfig holds every threshold, penalty and keyword list the health
// scorer uses. Tests substitute their own values without touching the
// scorer's control flow.
type ScoringConfig struct {
	BaseScore      int
	RevenueBonus   int // revenue strictly above expenses
	LastMonthBonus int // most recent month's net cash flow positive
	DebtPenalty    int // debt-burden specific deduction
	RiskPenalty    int // generic per-risk deduction
	MinScore       int
	MaxScore       int

	// Readiness band floors, right-open on the lower bound: a score equal to
	// the floor stays in the band below.
	HighFloor   int
	MediumFloor int

	VolatilityThreshold float64 // coefficient of variation of monthly credit
	DebtRatioThreshold  float64 // debt payments / total revenue

	DebtKeywords []string
	TaxKeywords  []string
}

// DefaultScoringConfig returns the canonical scoring constants.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		BaseScore:      50,
		RevenueBonus:   20,
		LastMonthBonus: 10,
		DebtPenalty:    10,
		RiskPenalty:    10,
		MinScore:       0,
		MaxScore:       100,

		HighFloor:   75,
		MediumFloor: 50,

		VolatilityThreshold: 0.5,
		DebtRatioThreshold:  0.4,

		DebtKeywords: []string{"emi", "loan", "interest", "finance"},
		TaxKeywords:  []string{"gst", "tax", "tds", "duty"},
	}
}
