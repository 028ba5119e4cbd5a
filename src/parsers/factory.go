// backend/src/parsers/factory.go
package parsers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat marks files whose extension has no parser.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// GetParser selects a parser by file extension. PDF statements are
// recognized but deliberately rejected: real PDF parsing is out of scope.
func GetParser(filename string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx", ".xls":
		return NewXLSXParser(), nil
	case ".pdf":
		return nil, fmt.Errorf("%w: PDF parsing not implemented, please use CSV or Excel", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}
