// backend/src/models/statement.go
package models

import (
	"encoding/json"
	"time"
)

// RawTable is the loosely-typed row/column table produced by the file
// parsers. Column labels come straight from the source file header and are
// not guaranteed unique or meaningful; every cell is kept as a string.
// Rows are padded or truncated to the header width by the parser.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// CanonicalRow is the unified representation of one cash transaction after
// schema normalization. Date stays a string here: the scorer performs the
// authoritative parse and drops rows it cannot read.
type CanonicalRow struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
}

// CanonicalTable is the normalized transaction table handed to the scorer.
type CanonicalTable []CanonicalRow

// MonthlyAggregate is one calendar-month bucket of the cash-flow series,
// keyed by month-end date.
type MonthlyAggregate struct {
	MonthEnd    time.Time `json:"-"`
	Credit      float64   `json:"credit"`
	Debit       float64   `json:"debit"`
	NetCashFlow float64   `json:"net_cash_flow"`
}

// monthlyAggregateJSON is the wire shape of MonthlyAggregate; the month-end
// date renders as YYYY-MM-DD.
type monthlyAggregateJSON struct {
	Date        string  `json:"date"`
	Credit      float64 `json:"credit"`
	Debit       float64 `json:"debit"`
	NetCashFlow float64 `json:"net_cash_flow"`
}

// MarshalJSON renders the month-end date as an ISO-8601 day string.
func (m MonthlyAggregate) MarshalJSON() ([]byte, error) {
	return json.Marshal(monthlyAggregateJSON{
		Date:        m.MonthEnd.Format("2006-01-02"),
		Credit:      m.Credit,
		Debit:       m.Debit,
		NetCashFlow: m.NetCashFlow,
	})
}

// HealthMetrics is the scorer's output and the sole contract with the
// insight renderer. BusinessType is caller-supplied; the scorer leaves it
// empty and the analysis service fills it in.
type HealthMetrics struct {
	Score           int                `json:"score"`
	Readiness       string             `json:"readiness"`
	TotalRevenue    float64            `json:"total_revenue"`
	TotalExpenses   float64            `json:"total_expenses"`
	NetCashFlow     float64            `json:"net_cash_flow"`
	DebtObligations float64            `json:"debt_obligations"`
	TaxCompliance   string             `json:"tax_compliance"`
	Risks           []string           `json:"risks"`
	MonthlyTrend    []MonthlyAggregate `json:"monthly_trend"`
	BusinessType    string             `json:"business_type,omitempty"`
}

// Readiness bands derived from the score.
const (
	ReadinessLow    = "Low"
	ReadinessMedium = "Medium"
	ReadinessHigh   = "High"
)

// Tax compliance states.
const (
	TaxDetected = "Tax Payments Detected"
	TaxUnclear  = "Unclear"
)
