// backend/src/insights/interfaces.go
package insights

import (
	"context"

	"github.com/PSGMeena/FinTech/src/models"
)

// Supported output languages. Anything other than LanguageHindi renders as
// English; the match is case-sensitive.
const (
	LanguageEnglish = "English"
	LanguageHindi   = "Hindi"
)

// Renderer turns a metrics structure into prose advice for the business
// owner.
type Renderer interface {
	Render(ctx context.Context, metrics *models.HealthMetrics, language string) (string, error)
}
