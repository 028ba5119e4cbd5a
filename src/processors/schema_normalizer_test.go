// backend/src/processors/schema_normalizer_test.go
package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSGMeena/FinTech/src/models"
)

func fixedNormalizer(now time.Time) *SchemaNormalizer {
	n := NewSchemaNormalizer()
	n.now = func() time.Time { return now }
	return n
}

func TestNormalize_LiteralColumnsWin(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"Date", "Description", "Debit", "Credit"},
		Rows: [][]string{
			{"01-01-2025", "Daily Sales Cash", "", "20000"},
			{"03-01-2025", "Store Rent", "8000", ""},
		},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 2)
	assert.Equal(t, "01-01-2025", out[0].Date)
	assert.Equal(t, "Daily Sales Cash", out[0].Description)
	assert.Equal(t, 20000.0, out[0].Credit)
	assert.Equal(t, 0.0, out[0].Debit)
	assert.Equal(t, 8000.0, out[1].Debit)
}

func TestNormalize_KeywordScanRenamesColumns(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"Txn Date", "Narration", "Withdrawal Amt", "Deposit Amt"},
		Rows: [][]string{
			{"05-06-2024", "UPI payment to vendor", "1500", ""},
		},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 1)
	assert.Equal(t, "05-06-2024", out[0].Date)
	assert.Equal(t, "UPI payment to vendor", out[0].Description)
	assert.Equal(t, 1500.0, out[0].Debit)
	assert.Equal(t, 0.0, out[0].Credit)
}

func TestNormalize_DescriptionTieBreakIsColumnOrder(t *testing.T) {
	// Both labels match description keywords; the earlier column wins even
	// though "particulars" sits later in the keyword list than "narration".
	table := models.RawTable{
		Columns: []string{"Particulars", "Narration"},
		Rows: [][]string{
			{"from particulars", "from narration"},
		},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 1)
	assert.Equal(t, "from particulars", out[0].Description)
}

func TestNormalize_DefaultsWhenNothingRecognizable(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"colA", "colB"},
		Rows: [][]string{
			{"1", "2"},
			{"3", "4"},
		},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 2)
	for _, row := range out {
		assert.NotEmpty(t, row.Date)
		assert.Equal(t, DefaultDescription, row.Description)
		assert.Equal(t, 0.0, row.Debit)
		assert.Equal(t, 0.0, row.Credit)
	}
}

func TestNormalize_SyntheticDatesEndToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	table := models.RawTable{
		Columns: []string{"colA"},
		Rows:    [][]string{{"1"}, {"2"}, {"3"}},
	}

	out := fixedNormalizer(now).Normalize(table)
	require.Len(t, out, 3)
	assert.Equal(t, "08-03-2025", out[0].Date)
	assert.Equal(t, "09-03-2025", out[1].Date)
	assert.Equal(t, "10-03-2025", out[2].Date)
}

func TestNormalize_FirstTextColumnBecomesDescription(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"Date", "Ref", "Credit"},
		Rows: [][]string{
			{"01-01-2025", "INV-001 groceries", "500"},
		},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 1)
	assert.Equal(t, "INV-001 groceries", out[0].Description)
}

func TestNormalize_AmountSplitBySign(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"Amount"},
		Rows:    [][]string{{"100"}, {"-50"}, {"0"}, {"30"}},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 4)
	assert.Equal(t, []float64{100, 0, 0, 30}, credits(out))
	assert.Equal(t, []float64{0, 50, 0, 0}, debits(out))
}

func TestNormalize_AmountIgnoredWhenCreditResolved(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"Amount", "Sales"},
		Rows:    [][]string{{"-999", "100"}},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 1)
	assert.Equal(t, 100.0, out[0].Credit)
	assert.Equal(t, 0.0, out[0].Debit)
}

func TestNormalize_EmptyRowsDropped(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"Date", "Description", "Credit"},
		Rows: [][]string{
			{"01-01-2025", "Sale", "100"},
			{"", "", ""},
			{"  ", "", " "},
			{"02-01-2025", "Sale", "200"},
		},
	}

	out := NewSchemaNormalizer().Normalize(table)
	assert.Len(t, out, 2)
}

func TestNormalize_CoercionFailuresBecomeZero(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"Date", "Description", "Credit", "Debit"},
		Rows: [][]string{
			{"01-01-2025", "Sale", "n/a", "--"},
		},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].Credit)
	assert.Equal(t, 0.0, out[0].Debit)
}

func TestNormalize_CurrencyNoiseTolerated(t *testing.T) {
	table := models.RawTable{
		Columns: []string{"Date", "Description", "Credit", "Debit"},
		Rows: [][]string{
			{"01-01-2025", "Big sale", "1,200.50", "₹300"},
		},
	}

	out := NewSchemaNormalizer().Normalize(table)
	require.Len(t, out, 1)
	assert.Equal(t, 1200.50, out[0].Credit)
	assert.Equal(t, 300.0, out[0].Debit)
}

func TestNormalize_EmptyTable(t *testing.T) {
	out := NewSchemaNormalizer().Normalize(models.RawTable{})
	assert.Empty(t, out)
}

func credits(rows models.CanonicalTable) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Credit
	}
	return out
}

func debits(rows models.CanonicalTable) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Debit
	}
	return out
}
