// backend/src/insights/fallback.go
package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/PSGMeena/FinTech/src/models"
)

// FallbackRenderer produces a scripted assessment when no generation backend
// is reachable. Output is deterministic given score, revenue, expenses, debt
// obligations, business type and language.
type FallbackRenderer struct{}

func NewFallbackRenderer() *FallbackRenderer {
	return &FallbackRenderer{}
}

// englishTips maps business types to their default advice. The generic
// services list handles unknown types.
var englishTips = map[string][]string{
	"Retail": {
		"Optimize inventory turnover to reduce holding costs.",
		"Analyze peak sales hours to staff efficiently.",
		"Negotiate bulk discounts with top suppliers.",
	},
	"Manufacturing": {
		"Review raw material sourcing contracts for better rates.",
		"Implement preventative maintenance to reduce downtime costs.",
		"Optimize energy consumption during peak production hours.",
	},
	"Agri": {
		"Invest in better storage to reduce post-harvest losses.",
		"Review crop insurance options for better risk coverage.",
		"Explore direct-to-market channels to increase margins.",
	},
	"Logistics": {
		"Optimize route planning to reduce fuel consumption.",
		"Implement regular vehicle maintenance to avoid costly repairs.",
		"Review driver efficiency and idle times.",
	},
	"Ecommerce": {
		"Analyze customer acquisition costs (CAC) vs lifetime value (LTV).",
		"Optimize shipping partners to reduce logistics costs.",
		"Focus on reducing cart abandonment rates.",
	},
}

var genericEnglishTips = []string{
	"Review recurring software subscriptions.",
	"Negotiate better payment terms with suppliers.",
	"Focus on collecting receivables faster.",
}

var hindiTipsByType = map[string][]string{
	"Agri": {
		"1. फसल बीमा विकल्पों की समीक्षा करें।",
		"2. बेहतर भंडारण (Storage) में निवेश करें।",
		"3. बिचौलियों को कम करके सीधे बाजार में बेचें।",
	},
	"Retail": {
		"1. इन्वेंट्री (Inventory) को जल्दी बेचने पर ध्यान दें।",
		"2. पीक सेल्स समय के अनुसार स्टाफिंग करें।",
		"3. थोक खरीद पर डिस्काउंट मांगें।",
	},
}

var genericHindiTips = []string{
	"1. अनावश्यक खर्चों की तुरंत समीक्षा करें।",
	"2. अपने आपूर्तिकर्ताओं (vendors) के साथ बेहतर शर्तों पर बात करें।",
	"3. नकदी प्रवाह (Cash Flow) को सुधारने पर ध्यान दें।",
}

var hindiStatus = map[string]string{
	"stable":       "स्थिर है",
	"excellent":    "उत्कृष्ट है",
	"critical":     "नाज़ुक है",
	"losing money": "घाटे में है",
}

func (r *FallbackRenderer) Render(_ context.Context, metrics *models.HealthMetrics, language string) (string, error) {
	score := metrics.Score
	revenue := metrics.TotalRevenue
	expenses := metrics.TotalExpenses
	debt := metrics.DebtObligations
	businessType := metrics.BusinessType
	if businessType == "" {
		businessType = "Retail"
	}

	healthStatus := "stable"
	if score > 75 {
		healthStatus = "excellent"
	} else if score < 40 {
		healthStatus = "critical"
	}

	tips, ok := englishTips[businessType]
	if !ok {
		tips = genericEnglishTips
	}
	tips = append([]string(nil), tips...)

	if expenses > revenue {
		tips = append([]string{"⚠️ IMMEDIATE ACTION: Expenses exceed Revenue. Cut discretionary spending."}, tips...)
		healthStatus = "losing money"
	}
	if debt > revenue*0.3 {
		tips = append(tips, "High Debt Alert: Focus on clearing high-interest loans first.")
	}
	tips = tips[:3]

	if language == LanguageHindi {
		return renderHindi(businessType, healthStatus, expenses > revenue), nil
	}
	return renderEnglish(businessType, healthStatus, score, revenue, tips), nil
}

func renderEnglish(businessType, healthStatus string, score int, revenue float64, tips []string) string {
	revenueNote := ""
	if revenue > 0 {
		revenueNote = fmt.Sprintf(" Your annual revenue is %.0f.", revenue)
	}
	loanAdvice := "Focus on improving cash flow before taking new loans."
	if score > 60 {
		loanAdvice = "Consider a short-term working capital loan."
	}

	return fmt.Sprintf(`**Financial Health:** Based on the analysis, your business health is **%s**.%s

**Actionable Tips for %s:**
1. %s
2. %s
3. %s

**Working Capital Recommendation:**
Based on your score of %d/100, we recommend maintaining a cash buffer of at least 15%% of your monthly turnover. %s`,
		healthStatus, revenueNote, businessType, tips[0], tips[1], tips[2], score, loanAdvice)
}

func renderHindi(businessType, healthStatus string, losingMoney bool) string {
	tips, ok := hindiTipsByType[businessType]
	if !ok {
		tips = genericHindiTips
	}
	tips = append([]string(nil), tips...)
	if losingMoney {
		tips = append([]string{"⚠️ चेतावनी: आपके खर्च आपकी आय से अधिक हैं।"}, tips...)
	}
	tips = tips[:3]

	status, ok := hindiStatus[healthStatus]
	if !ok {
		status = hindiStatus["stable"]
	}

	return fmt.Sprintf(`**वित्तीय स्वास्थ्य:** वर्तमान डेटा के आधार पर, आपकी वित्तीय स्थिति **%s**।

**प्रमुख सुझाव (%s):**
%s

**कार्यशील पूंजी सलाह:**
आपातकालीन निधि (Emergency Fund) बनाए रखें और कम से कम 3 महीने के खर्चों के बराबर नकदी सुरक्षित रखें।`,
		status, businessType, strings.Join(tips, "\n"))
}
