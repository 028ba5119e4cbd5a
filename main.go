package main

import (
	"context"
	"encoding/json"
	stdlog "log"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/PSGMeena/FinTech/src/config"
	"github.com/PSGMeena/FinTech/src/handlers"
	"github.com/PSGMeena/FinTech/src/insights"
	"github.com/PSGMeena/FinTech/src/logger"
	"github.com/PSGMeena/FinTech/src/processors"
	"github.com/PSGMeena/FinTech/src/services"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool, len(config.Cfg.AllowedOrigins))
	for _, o := range config.Cfg.AllowedOrigins {
		allowedOrigins[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Requested-With, X-Request-ID")
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == http.MethodOptions {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("FinTech analysis server starting...")

	logger.L.Info("Initializing insight cache...")
	insightCache := cache.New(config.Cfg.InsightCacheTTL, services.CacheCleanupInterval)

	logger.L.Info("Initializing services and handlers...")
	normalizer := processors.NewSchemaNormalizer()
	scorer := processors.NewHealthScorer(processors.DefaultScoringConfig())
	fallbackRenderer := insights.NewFallbackRenderer()

	var liveRenderer insights.Renderer
	if config.Cfg.GeminiAPIKey != "" {
		renderer, err := insights.NewGeminiRenderer(context.Background(), config.Cfg.GeminiAPIKey, config.Cfg.GeminiModel)
		if err != nil {
			logger.L.Error("Failed to initialize Gemini renderer, insights will use the fallback", "error", err)
		} else {
			defer renderer.Close()
			liveRenderer = renderer
			logger.L.Info("Gemini insight renderer initialized", "model", config.Cfg.GeminiModel)
		}
	}

	analysisService := services.NewAnalysisService(normalizer, scorer, liveRenderer, fallbackRenderer, insightCache)
	analyzeHandler := handlers.NewAnalyzeHandler(analysisService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("POST /api/analyze-file", analyzeHandler.HandleAnalyzeFile)
	apiRouter.HandleFunc("GET /api/sample-data", handlers.HandleGetSampleData)

	rootMux.Handle("/api/", apiRouter)
	rootMux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "FinTech analysis backend is running"})
			return
		}
		logger.L.Warn("Path not found", "method", r.Method, "path", r.URL.Path)
		http.NotFound(w, r)
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(handlers.RequestIDMiddleware(rootMux)))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
