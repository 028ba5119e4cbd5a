// backend/src/parsers/xlsx_parser.go
package parsers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/PSGMeena/FinTech/src/models"
)

// XLSXParser reads the first sheet of an Excel workbook into a RawTable.
// The first row is treated as the header.
type XLSXParser struct{}

func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

func (p *XLSXParser) Parse(file io.Reader) (models.RawTable, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("failed to open Excel workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.RawTable{}, fmt.Errorf("workbook contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return models.RawTable{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return models.RawTable{}, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	header := rows[0]
	body := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) > len(header) {
			row = row[:len(header)]
		}
		body = append(body, row)
	}

	return models.RawTable{Columns: header, Rows: body}, nil
}
