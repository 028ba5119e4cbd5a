// backend/src/processors/schema_normalizer.go
package processors

import (
	"strings"
	"time"

	"github.com/PSGMeena/FinTech/src/models"
	"github.com/PSGMeena/FinTech/src/utils"
)

// Canonical column names every input table is mapped onto.
const (
	colDate        = "date"
	colDescription = "description"
	colCredit      = "credit"
	colDebit       = "debit"
	colAmount      = "amount"
)

// DefaultDescription is used when no column in the input can serve as a
// transaction description.
const DefaultDescription = "Transaction"

// fieldRule pairs a canonical field with the ordered keyword set used to
// recognize it in arbitrary column labels. A column whose lowered label
// contains any keyword qualifies; the first qualifying column in original
// order wins.
type fieldRule struct {
	field    string
	keywords []string
}

// resolutionRules is the priority table for column identity inference. The
// keyword ordering within each rule is part of the contract and must not be
// reordered.
var resolutionRules = []fieldRule{
	{field: colDate, keywords: []string{"date", "time", "month"}},
	{field: colDescription, keywords: []string{
		"description", "narration", "particulars", "product", "item",
		"details", "name", "source", "category",
	}},
	{field: colCredit, keywords: []string{
		"credit", "deposit", "income", "revenue", "sales", "received",
		"total", "gross",
	}},
	{field: colDebit, keywords: []string{
		"debit", "withdrawal", "expense", "cost", "payment", "spent", "out",
	}},
}

// SchemaNormalizer maps an arbitrary transaction-like table onto the
// canonical date/description/debit/credit schema. It never fails: every
// missing or ambiguous signal degrades to a safe default.
type SchemaNormalizer struct {
	rules []fieldRule
	now   func() time.Time
}

// NewSchemaNormalizer creates a normalizer with the default resolution rules.
func NewSchemaNormalizer() *SchemaNormalizer {
	return &SchemaNormalizer{rules: resolutionRules, now: time.Now}
}

// Normalize applies the column-resolution heuristics and returns the
// canonical table. Rows where every cell is empty are dropped; everything
// else survives with defaults filled in.
func (n *SchemaNormalizer) Normalize(table models.RawTable) models.CanonicalTable {
	labels := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		labels[i] = strings.ToLower(strings.TrimSpace(c))
	}

	rows := dropEmptyRows(table.Rows, len(labels))

	// Resolve one source column index per canonical field. claimed prevents
	// a column from serving two fields.
	claimed := make(map[int]bool)
	resolved := make(map[string]int)
	for _, rule := range n.rules {
		if idx, ok := resolveColumn(labels, claimed, rule); ok {
			resolved[rule.field] = idx
			claimed[idx] = true
		}
	}

	// Description fallback: first text-typed unclaimed column.
	if _, ok := resolved[colDescription]; !ok {
		if idx, ok := firstTextColumn(labels, rows, claimed); ok {
			resolved[colDescription] = idx
			claimed[idx] = true
		}
	}

	out := make(models.CanonicalTable, 0, len(rows))
	for i, row := range rows {
		canonical := models.CanonicalRow{Description: DefaultDescription}
		if idx, ok := resolved[colDate]; ok {
			canonical.Date = strings.TrimSpace(cell(row, idx))
		} else {
			canonical.Date = n.syntheticDate(len(rows), i)
		}
		if idx, ok := resolved[colDescription]; ok {
			canonical.Description = strings.TrimSpace(cell(row, idx))
		}
		if idx, ok := resolved[colCredit]; ok {
			canonical.Credit, _ = utils.ParseLooseFloat(cell(row, idx))
		}
		if idx, ok := resolved[colDebit]; ok {
			canonical.Debit, _ = utils.ParseLooseFloat(cell(row, idx))
		}
		out = append(out, canonical)
	}

	n.applyAmountFallback(labels, rows, out)
	return out
}

// applyAmountFallback splits a single signed "amount" column into credit and
// debit when the keyword resolution found nothing usable for either side:
// positive values become credit, negatives become debit magnitudes.
func (n *SchemaNormalizer) applyAmountFallback(labels []string, rows [][]string, out models.CanonicalTable) {
	amountIdx := -1
	for i, l := range labels {
		if l == colAmount {
			amountIdx = i
			break
		}
	}
	if amountIdx < 0 || !allZero(out) {
		return
	}
	for i, row := range rows {
		v, ok := utils.ParseLooseFloat(cell(row, amountIdx))
		if !ok {
			continue
		}
		switch {
		case v > 0:
			out[i].Credit = v
		case v < 0:
			out[i].Debit = -v
		}
	}
}

// syntheticDate produces a contiguous daily sequence ending today, so that a
// table with no date column still yields one date per row. These dates carry
// no real temporal meaning.
func (n *SchemaNormalizer) syntheticDate(total, index int) string {
	d := n.now().AddDate(0, 0, -(total - 1 - index))
	return d.Format(utils.DefaultDateFormat)
}

// resolveColumn finds the source column for a rule: an exact label match
// first, then the first unclaimed column whose label contains any of the
// rule's keywords.
func resolveColumn(labels []string, claimed map[int]bool, rule fieldRule) (int, bool) {
	for i, l := range labels {
		if !claimed[i] && l == rule.field {
			return i, true
		}
	}
	for i, l := range labels {
		if claimed[i] {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(l, kw) {
				return i, true
			}
		}
	}
	return -1, false
}

// firstTextColumn returns the first unclaimed column holding at least one
// non-empty, non-numeric cell.
func firstTextColumn(labels []string, rows [][]string, claimed map[int]bool) (int, bool) {
	for i := range labels {
		if claimed[i] {
			continue
		}
		for _, row := range rows {
			v := strings.TrimSpace(cell(row, i))
			if v == "" {
				continue
			}
			if _, numeric := utils.ParseLooseFloat(v); !numeric {
				return i, true
			}
		}
	}
	return -1, false
}

// dropEmptyRows removes rows where every cell is blank and pads ragged rows
// to the header width.
func dropEmptyRows(rows [][]string, width int) [][]string {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		empty := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		kept = append(kept, row)
	}
	return kept
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func allZero(table models.CanonicalTable) bool {
	for _, r := range table {
		if r.Credit != 0 || r.Debit != 0 {
			return false
		}
	}
	return true
}
