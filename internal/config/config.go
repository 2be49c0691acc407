package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the portal's environment-driven settings
type Config struct {
	HTTPPort    string
	RedisAddr   string
	BackendURL  string
	JWTSecret   string
	SessionTTL  time.Duration
	CORSOrigins string
}

// Load reads configuration from the environment, picking up a .env
// file when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		BackendURL:  getEnv("BACKEND_URL", "http://localhost:8000"),
		JWTSecret:   getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		SessionTTL:  time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
