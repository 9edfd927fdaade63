package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string

	OpenRouterAPIKey string

	// Rate limiter backend. When RedisAddr is empty the login limiter
	// runs on an in-process fixed window instead.
	RedisAddr     string
	RedisPassword string
	LoginLimit    int
	LoginWindow   time.Duration

	// Feature flags for the AI-backed strategies. Both default to off:
	// the live summary path truncates, the live search path matches
	// substrings in SQL.
	AISummaryEnabled bool
	AISearchEnabled  bool
}

func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      buildDatabaseURL(),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		LoginLimit:       getEnvInt("LOGIN_RATE_LIMIT", 5),
		LoginWindow:      time.Duration(getEnvInt("LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
		AISummaryEnabled: getEnvBool("AI_SUMMARY_ENABLED", false),
		AISearchEnabled:  getEnvBool("AI_SEARCH_ENABLED", false),
	}
}

func buildDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "articlehub")
	pass := getEnv("DB_PASSWORD", "articlehub")
	name := getEnv("DB_NAME", "articlehub")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if num, err := strconv.Atoi(v); err == nil {
			return num
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
