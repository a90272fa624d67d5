// README: Config loader with env defaults for HTTP, AI providers, Places, and rate limiting.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	AI struct {
		Provider  string
		OpenAIKey string
		GeminiKey string
	}
	Places struct {
		APIKey string
	}
	Redis struct {
		Addr string
	}
	RateLimit RateLimitConfig
	LogLevel  string
}

// Load reads configuration from the environment. A .env file is applied first
// when present; real environment variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("SCOUT_HTTP_ADDR", ":8080")
	cfg.AI.Provider = envOrDefault("SCOUT_AI_PROVIDER", "openai")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Places.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.Redis.Addr = envOrDefault("SCOUT_REDIS_ADDR", "localhost:6379")
	cfg.RateLimit.Requests = envOrDefaultInt("SCOUT_RATE_LIMIT", 60)
	cfg.RateLimit.Window = envOrDefaultDuration("SCOUT_RATE_LIMIT_WINDOW", time.Minute)
	cfg.LogLevel = envOrDefault("SCOUT_LOG_LEVEL", "info")
	return cfg, nil
}

// AIConfigured reports whether the configured extraction provider has a credential.
func (c Config) AIConfigured() bool {
	if c.AI.Provider == "gemini" {
		return c.AI.GeminiKey != ""
	}
	return c.AI.OpenAIKey != ""
}

// PlacesConfigured reports whether the places-search credential is present.
func (c Config) PlacesConfigured() bool {
	return c.Places.APIKey != ""
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
