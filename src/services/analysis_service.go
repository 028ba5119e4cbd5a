// backend/src/services/analysis_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/PSGMeena/FinTech/src/insights"
	"github.com/PSGMeena/FinTech/src/logger"
	"github.com/PSGMeena/FinTech/src/models"
	"github.com/PSGMeena/FinTech/src/parsers"
	"github.com/PSGMeena/FinTech/src/processors"
	"github.com/PSGMeena/FinTech/src/utils"
)

const (
	ckInsights = "insights_%s_%s" // metrics hash, language

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type analysisServiceImpl struct {
	normalizer *processors.SchemaNormalizer
	scorer     *processors.HealthScorer
	renderer   insights.Renderer
	fallback   insights.Renderer
	cache      *cache.Cache
}

// NewAnalysisService wires the pipeline. renderer may be nil (no API key
// configured); fallback must always be usable.
func NewAnalysisService(
	normalizer *processors.SchemaNormalizer,
	scorer *processors.HealthScorer,
	renderer insights.Renderer,
	fallback insights.Renderer,
	insightCache *cache.Cache,
) AnalysisService {
	return &analysisServiceImpl{
		normalizer: normalizer,
		scorer:     scorer,
		renderer:   renderer,
		fallback:   fallback,
		cache:      insightCache,
	}
}

func (s *analysisServiceImpl) Analyze(ctx context.Context, file io.Reader, filename, businessType, language string) (*AnalysisResult, error) {
	start := time.Now()
	logger.L.Info("Analyze START", "filename", filename, "businessType", businessType, "language", language)

	parser, err := parsers.GetParser(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingFailed, err)
	}

	rawTable, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingFailed, err)
	}

	canonical := s.normalizer.Normalize(rawTable)

	metrics, err := s.scorer.Score(canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	metrics.BusinessType = businessType

	insightText := s.renderInsights(ctx, metrics, language)

	logger.L.Info("Analyze END",
		"filename", filename,
		"rows", len(canonical),
		"months", len(metrics.MonthlyTrend),
		"score", metrics.Score,
		"duration", time.Since(start))
	return &AnalysisResult{Metrics: metrics, Insights: insightText}, nil
}

// renderInsights tries the live renderer first and degrades to the
// deterministic fallback on any error. Rendered text is memoized on the
// metrics content so re-uploads of the same statement do not re-bill the
// generation backend.
func (s *analysisServiceImpl) renderInsights(ctx context.Context, metrics *models.HealthMetrics, language string) string {
	hash, hashErr := utils.GenerateETag(metrics)
	cacheKey := ""
	if hashErr == nil {
		cacheKey = fmt.Sprintf(ckInsights, hash, language)
		if cached, found := s.cache.Get(cacheKey); found {
			logger.L.Debug("Insight cache hit", "key", cacheKey)
			return cached.(string)
		}
	}

	text := ""
	if s.renderer != nil {
		rendered, err := s.renderer.Render(ctx, metrics, language)
		if err != nil {
			logger.L.Warn("Live insight generation failed, using fallback", "error", err)
		} else {
			text = rendered
		}
	}
	if text == "" {
		fallbackText, err := s.fallback.Render(ctx, metrics, language)
		if err != nil {
			logger.L.Error("Fallback insight rendering failed", "error", err)
			return ""
		}
		text = fallbackText
	}

	if cacheKey != "" {
		s.cache.Set(cacheKey, text, cache.DefaultExpiration)
	}
	return text
}
