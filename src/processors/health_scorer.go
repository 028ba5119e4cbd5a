// backend/src/processors/health_scorer.go
package processors

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/PSGMeena/FinTech/src/logger"
	"github.com/PSGMeena/FinTech/src/models"
	"github.com/PSGMeena/FinTech/src/utils"
)

// ErrEmptyDataset is returned when no row survives date parsing. A score
// over zero months is meaningless, so this is a hard failure rather than a
// defaulted result.
var ErrEmptyDataset = errors.New("empty dataset: no rows with a parseable date")

// Risk finding texts. Each is appended independently; any subset may fire.
const (
	riskNegativeCashFlow = "Burning more cash than earning (Negative Cash Flow)"
	riskHighVolatility   = "High Revenue Volatility"
	riskNoTaxPayments    = "No tax payments detected in this period"
	riskDebtBurden       = "High Debt Repayment Burden (>40% of revenue)"
)

// HealthScorer aggregates a canonical transaction table into monthly
// cash-flow buckets and derives a bounded financial-health score with
// qualitative risk findings.
type HealthScorer struct {
	cfg ScoringConfig
}

// NewHealthScorer creates a scorer with the given configuration.
func NewHealthScorer(cfg ScoringConfig) *HealthScorer {
	return &HealthScorer{cfg: cfg}
}

type datedRow struct {
	date time.Time
	row  models.CanonicalRow
}

// Score computes the health metrics for the table. Rows whose date cannot be
// parsed are dropped here; if nothing remains, ErrEmptyDataset is returned.
func (s *HealthScorer) Score(table models.CanonicalTable) (*models.HealthMetrics, error) {
	dated := make([]datedRow, 0, len(table))
	for _, row := range table {
		t, ok := utils.ParseFlexibleDate(row.Date)
		if !ok {
			logger.L.Debug("Dropping row with unparseable date", "date", row.Date)
			continue
		}
		dated = append(dated, datedRow{date: t, row: row})
	}
	if len(dated) == 0 {
		return nil, ErrEmptyDataset
	}

	monthly := bucketByMonth(dated)

	var totalRevenue, totalExpenses float64
	credits := make([]float64, len(monthly))
	for i, m := range monthly {
		totalRevenue += m.Credit
		totalExpenses += m.Debit
		credits[i] = m.Credit
	}

	risks := []string{}

	if totalExpenses > totalRevenue {
		risks = append(risks, riskNegativeCashFlow)
	}

	// Revenue volatility: coefficient of variation of the monthly credit
	// series. Needs at least two months and a positive mean, otherwise the
	// check is skipped entirely.
	if avg := utils.Mean(credits); avg > 0 && len(credits) > 1 {
		if utils.SampleStdDev(credits)/avg > s.cfg.VolatilityThreshold {
			risks = append(risks, riskHighVolatility)
		}
	}

	debtPayments := sumDebitsMatching(dated, s.cfg.DebtKeywords)
	taxPayments := sumDebitsMatching(dated, s.cfg.TaxKeywords)

	taxCompliance := models.TaxUnclear
	if taxPayments > 0 {
		taxCompliance = models.TaxDetected
	} else {
		risks = append(risks, riskNoTaxPayments)
	}

	score := s.cfg.BaseScore
	if totalRevenue > totalExpenses {
		score += s.cfg.RevenueBonus
	}
	if monthly[len(monthly)-1].NetCashFlow > 0 {
		score += s.cfg.LastMonthBonus
	}

	// The debt-burden risk deducts twice: once here and once more through
	// the generic per-risk deduction below. Intentional; do not "fix".
	if totalRevenue > 0 && debtPayments/totalRevenue > s.cfg.DebtRatioThreshold {
		risks = append(risks, riskDebtBurden)
		score -= s.cfg.DebtPenalty
	}

	score -= len(risks) * s.cfg.RiskPenalty
	if score < s.cfg.MinScore {
		score = s.cfg.MinScore
	}
	if score > s.cfg.MaxScore {
		score = s.cfg.MaxScore
	}

	readiness := models.ReadinessLow
	if score > s.cfg.HighFloor {
		readiness = models.ReadinessHigh
	} else if score > s.cfg.MediumFloor {
		readiness = models.ReadinessMedium
	}

	return &models.HealthMetrics{
		Score:           score,
		Readiness:       readiness,
		TotalRevenue:    totalRevenue,
		TotalExpenses:   totalExpenses,
		NetCashFlow:     totalRevenue - totalExpenses,
		DebtObligations: debtPayments,
		TaxCompliance:   taxCompliance,
		Risks:           risks,
		MonthlyTrend:    monthly,
	}, nil
}

// bucketByMonth groups rows by month-end date and sums credit and debit per
// bucket, returning the buckets in chronological order.
func bucketByMonth(rows []datedRow) []models.MonthlyAggregate {
	buckets := make(map[time.Time]*models.MonthlyAggregate)
	for _, r := range rows {
		end := utils.MonthEnd(r.date)
		b, ok := buckets[end]
		if !ok {
			b = &models.MonthlyAggregate{MonthEnd: end}
			buckets[end] = b
		}
		b.Credit += r.row.Credit
		b.Debit += r.row.Debit
	}

	out := make([]models.MonthlyAggregate, 0, len(buckets))
	for _, b := range buckets {
		b.NetCashFlow = b.Credit - b.Debit
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonthEnd.Before(out[j].MonthEnd) })
	return out
}

// sumDebitsMatching totals the debit of rows whose description contains any
// of the keywords, case-insensitively.
func sumDebitsMatching(rows []datedRow, keywords []string) float64 {
	var total float64
	for _, r := range rows {
		desc := strings.ToLower(r.row.Description)
		for _, kw := range keywords {
			if strings.Contains(desc, kw) {
				total += r.row.Debit
				break
			}
		}
	}
	return total
}
