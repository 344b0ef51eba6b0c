package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ethiocareer/careercli/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with CAREER_* variables. A dotenv file is loaded
// first when present; variables already set in the process environment win
// over the file.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		// optional: missing ./.env is not an error
		_ = godotenv.Load()
	}

	cfg.APIBaseURL = getEnv("CAREER_API_BASE_URL", cfg.APIBaseURL)
	cfg.AIChatURL = getEnv("CAREER_AI_CHAT_URL", cfg.AIChatURL)
	cfg.DataDir = getEnv("CAREER_DATA_DIR", cfg.DataDir)
	cfg.StorageBackend = getEnv("CAREER_STORAGE", cfg.StorageBackend)
	cfg.RedisAddr = getEnv("CAREER_REDIS_ADDR", cfg.RedisAddr)
	cfg.PollInterval = getEnvAsDuration("CAREER_POLL_INTERVAL", cfg.PollInterval)
	cfg.RequestTimeout = getEnvAsDuration("CAREER_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ChatTimeout = getEnvAsDuration("CAREER_CHAT_TIMEOUT", cfg.ChatTimeout)
	cfg.RateLimit = getEnvAsFloat("CAREER_RATE_LIMIT", cfg.RateLimit)
	cfg.LogLevel = getEnv("CAREER_LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
