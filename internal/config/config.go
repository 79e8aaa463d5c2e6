package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultTokenExpiry = 60 * time.Minute

type Config struct {
	DatabaseURL string
	Host        string
	Port        string
	SecretKey   string
	TokenExpiry time.Duration
}

// Load reads configuration from the environment. DATABASE_URL is the only
// required value; everything else falls back to development defaults.
func Load() (*Config, error) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return &Config{
		DatabaseURL: databaseURL,
		Host:        getEnv("APP_HOST", "0.0.0.0"),
		Port:        getEnv("APP_PORT", "8000"),
		SecretKey:   getEnv("SECRET_KEY", "change_me_in_production"),
		TokenExpiry: tokenExpiryFromEnv(),
	}, nil
}

// ListenAddr joins host and port for fiber's Listen.
func (c *Config) ListenAddr() string {
	return c.Host + ":" + c.Port
}

func tokenExpiryFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"))
	if raw == "" {
		return defaultTokenExpiry
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return defaultTokenExpiry
	}
	return time.Duration(minutes) * time.Minute
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
