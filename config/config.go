package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	StoreBackend string // "memory" (default) or "postgres"
	DBUrl        string
	FrontendURL  string
	// AI Suggestion Provider (OpenAI-compatible chat completions endpoint)
	AIBaseURL        string
	AIAPIKey         string
	AIModel          string
	AITimeoutSeconds int
	// Redis/Upstash Configuration (rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitSuggestThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production if the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", "memory")),
		DBUrl:        getEnv("DATABASE_URL", ""),
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// AI Suggestion Provider
		AIBaseURL:        strings.TrimRight(getEnv("AI_BASE_URL", ""), "/"),
		AIAPIKey:         getEnv("AI_API_KEY", ""),
		AIModel:          getEnv("AI_MODEL", "gpt-4o-mini"),
		AITimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 30),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitSuggestThreshold: getEnvInt("RATE_LIMIT_SUGGEST_THRESHOLD", 10),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.StoreBackend == "postgres" && cfg.DBUrl == "" {
		log.Println("WARNING: STORE_BACKEND=postgres but DATABASE_URL is missing. Falling back to in-memory store.")
		cfg.StoreBackend = "memory"
	}

	if cfg.AIBaseURL == "" {
		log.Println("WARNING: AI_BASE_URL not configured. Skill suggestions will return empty results.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
