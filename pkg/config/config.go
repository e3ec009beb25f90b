package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultMaxResumeBytes = 5 << 20

type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	UploadDir      string
	MaxResumeBytes int64

	// TransitionsFile points at a YAML application-status table; empty keeps the default.
	TransitionsFile  string
	StatsDefaultDays int

	SiteTitle  string
	SiteHeader string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:        getEnv("JWT_ISSUER", "jobboard"),
		JWTTTLMinutes:    getEnvInt("JWT_TTL_MINUTES", 60),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		MaxResumeBytes:   int64(getEnvInt("MAX_RESUME_BYTES", defaultMaxResumeBytes)),
		TransitionsFile:  os.Getenv("APPLICATION_TRANSITIONS_FILE"),
		StatsDefaultDays: getEnvInt("STATS_DEFAULT_DAYS", 30),
		SiteTitle:        os.Getenv("SITE_TITLE"),
		SiteHeader:       os.Getenv("SITE_HEADER"),
	}
	if cfg.MaxResumeBytes <= 0 {
		cfg.MaxResumeBytes = defaultMaxResumeBytes
	}
	if cfg.StatsDefaultDays <= 0 {
		cfg.StatsDefaultDays = 30
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
