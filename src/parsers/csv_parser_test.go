// backend/src/parsers/csv_parser_test.go
package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser_Parse(t *testing.T) {
	input := "Date,Description,Debit,Credit\n01-01-2025,Daily Sales,,20000\n03-01-2025,Rent,8000,\n"
	table, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Debit", "Credit"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"01-01-2025", "Daily Sales", "", "20000"}, table.Rows[0])
	assert.Equal(t, []string{"03-01-2025", "Rent", "8000", ""}, table.Rows[1])
}

func TestCSVParser_RaggedRowsTolerated(t *testing.T) {
	input := "Date,Description,Credit\n01-01-2025,Sale\n02-01-2025,Sale,100,extra\n"
	table, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	// Short rows stay short (the normalizer pads); long rows truncate to the
	// header width.
	assert.Equal(t, []string{"01-01-2025", "Sale"}, table.Rows[0])
	assert.Equal(t, []string{"02-01-2025", "Sale", "100"}, table.Rows[1])
}

func TestCSVParser_EmptyInput(t *testing.T) {
	_, err := NewCSVParser().Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	table, err := NewCSVParser().Parse(strings.NewReader("Date,Description,Credit\n"))
	require.NoError(t, err)
	assert.Len(t, table.Columns, 3)
	assert.Empty(t, table.Rows)
}

func TestGetParser(t *testing.T) {
	p, err := GetParser("statement.csv")
	require.NoError(t, err)
	assert.IsType(t, &CSVParser{}, p)

	p, err = GetParser("Statement.XLSX")
	require.NoError(t, err)
	assert.IsType(t, &XLSXParser{}, p)

	p, err = GetParser("book.xls")
	require.NoError(t, err)
	assert.IsType(t, &XLSXParser{}, p)

	_, err = GetParser("statement.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = GetParser("statement.docx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestXLSXParser_RejectsNonWorkbook(t *testing.T) {
	_, err := NewXLSXParser().Parse(strings.NewReader("this is not a zip archive"))
	assert.Error(t, err)
}
