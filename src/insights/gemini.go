// backend/src/insights/gemini.go
package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/PSGMeena/FinTech/src/models"
)

// GeminiRenderer produces the financial assessment with the Gemini API.
type GeminiRenderer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiRenderer creates a renderer backed by the given API key and model
// name. An empty model name defaults to gemini-pro.
func NewGeminiRenderer(ctx context.Context, apiKey string, modelName string) (*GeminiRenderer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-pro"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)

	return &GeminiRenderer{client: client, model: model}, nil
}

func (g *GeminiRenderer) Render(ctx context.Context, metrics *models.HealthMetrics, language string) (string, error) {
	if language != LanguageHindi {
		language = LanguageEnglish
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(metrics, language)))
	if err != nil {
		return "", fmt.Errorf("generating insights: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty model response")
	}
	return sb.String(), nil
}

func (g *GeminiRenderer) Close() {
	g.client.Close()
}

// buildPrompt assembles the advisor prompt from the metrics contract fields.
func buildPrompt(metrics *models.HealthMetrics, language string) string {
	businessType := metrics.BusinessType
	if businessType == "" {
		businessType = "General"
	}

	return fmt.Sprintf(`You are a financial advisor for a Small/Medium Enterprise (SME).
Analyze the following financial summary:
- Business Type: %s
- Score: %d/100
- Total Revenue: %.2f
- Total Expenses: %.2f
- Debt Obligations: %.2f
- Tax Status: %s
- Risks: %s

Provide a professional financial assessment in %s.
Structure your response exactly as follows (keep formatting clean):

**Financial Health:** [Explain the score and overall situation in 2-3 sentences]

**Key Observations:**
*   [Observation 1]
*   [Observation 2]

**Actionable Tips:**
1. [Tip 1]
2. [Tip 2]
3. [Tip 3]

**Working Capital Recommendation:** [Specific advice on working capital]

Note: Keep the tone helpful, professional, and encouraging.`,
		businessType,
		metrics.Score,
		metrics.TotalRevenue,
		metrics.TotalExpenses,
		metrics.DebtObligations,
		metrics.TaxCompliance,
		strings.Join(metrics.Risks, ", "),
		language,
	)
}
