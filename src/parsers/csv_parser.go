// backend/src/parsers/csv_parser.go
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/PSGMeena/FinTech/src/models"
)

// CSVParser reads a comma-separated export into a RawTable. Ragged records
// are tolerated; the normalizer pads them to the header width.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) Parse(file io.Reader) (models.RawTable, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return models.RawTable{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return models.RawTable{}, fmt.Errorf("failed to read CSV records: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		if len(record) > len(header) {
			record = record[:len(header)]
		}
		rows = append(rows, record)
	}

	return models.RawTable{Columns: header, Rows: rows}, nil
}
