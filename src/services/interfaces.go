// backend/src/services/interfaces.go
package services

import (
	"context"
	"errors"
	"io"

	"github.com/PSGMeena/FinTech/src/models"
)

// Sentinel errors used by handlers to map failures to HTTP status codes.
var (
	// ErrParsingFailed wraps file decoding problems (bad format, corrupt
	// file, unsupported extension).
	ErrParsingFailed = errors.New("parsing failed")
	// ErrAnalysisFailed wraps scoring problems, notably the empty dataset
	// (no rows with a parseable date).
	ErrAnalysisFailed = errors.New("analysis failed")
)

// AnalysisResult is the full response for one uploaded statement.
type AnalysisResult struct {
	Metrics  *models.HealthMetrics `json:"metrics"`
	Insights string                `json:"insights"`
}

// AnalysisService runs the full pipeline: decode the file, normalize the
// schema, score the canonical table and render insights.
type AnalysisService interface {
	Analyze(ctx context.Context, file io.Reader, filename, businessType, language string) (*AnalysisResult, error)
}
