// backend/src/parsers/interfaces.go
package parsers

import (
	"io"

	"github.com/PSGMeena/FinTech/src/models"
)

// Parser decodes an uploaded file into a raw row/column table. Parsers do no
// schema interpretation; that is the normalizer's job.
type Parser interface {
	Parse(file io.Reader) (models.RawTable, error)
}
