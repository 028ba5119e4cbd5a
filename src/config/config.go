package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	LogLevel           string
	MaxUploadSizeBytes int64
	AllowedOrigins     []string

	GeminiAPIKey string
	GeminiModel  string

	InsightCacheTTL time.Duration

	SampleDataURL string
}

var Cfg *AppConfig

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", err)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	insightCacheTTLStr := getEnv("INSIGHT_CACHE_TTL", "15m")
	insightCacheTTL, err := time.ParseDuration(insightCacheTTLStr)
	if err != nil {
		log.Printf("WARNING: Invalid INSIGHT_CACHE_TTL format '%s'. Using default 15m. Error: %v", insightCacheTTLStr, err)
		insightCacheTTL = 15 * time.Minute
	}

	geminiAPIKey := getEnv("GEMINI_API_KEY", "")
	if geminiAPIKey == "" {
		log.Println("Info: GEMINI_API_KEY not set. Insight generation will use the deterministic fallback.")
	}

	Cfg = &AppConfig{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MaxUploadSizeBytes: maxUploadSizeBytes,
		AllowedOrigins:     splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		GeminiAPIKey: geminiAPIKey,
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-pro"),

		InsightCacheTTL: insightCacheTTL,

		SampleDataURL: getEnv("SAMPLE_DATA_URL", "/static/sample_statement.csv"),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, MaxUploadMB=%d, GeminiConfigured=%t",
		Cfg.Port, Cfg.LogLevel, Cfg.MaxUploadSizeBytes/(1024*1024), Cfg.GeminiAPIKey != "")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
