package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

type Config struct {
	Port      string
	JWTSecret string
	DB        DBConfig
}

// Load reads the given env files (default .env) and then the process
// environment. Missing files are fine; missing required variables are not.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Warn("no env file loaded, relying on process environment", "files", envFiles)
	}

	cfg := &Config{
		Port: envOr("PORT", "8080"),
		DB: DBConfig{
			SSLMode:           envOr("POSTGRES_SSL_MODE", "disable"),
			MaxConns:          int32(envOrInt("DB_MAX_CONNS", 25)),
			MinConns:          int32(envOrInt("DB_MIN_CONNS", 5)),
			MaxConnLifetime:   envOrDuration("DB_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime:   envOrDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod: envOrDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		},
	}

	required := []struct {
		key  string
		dest *string
	}{
		{"POSTGRES_HOST", &cfg.DB.Host},
		{"POSTGRES_PORT", &cfg.DB.Port},
		{"POSTGRES_USER", &cfg.DB.User},
		{"POSTGRES_PASSWORD", &cfg.DB.Password},
		{"POSTGRES_DB", &cfg.DB.Name},
		{"JWT_SECRET", &cfg.JWTSecret},
	}
	for _, v := range required {
		value := os.Getenv(v.key)
		if value == "" {
			return nil, fmt.Errorf("%s is required", v.key)
		}
		*v.dest = value
	}

	slog.Info("configuration loaded", "port", cfg.Port, "db_host", cfg.DB.Host)

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func envOrDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
