package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Supported values of DB_DRIVER.
const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

// ErrMissingEnv is returned when a required variable is unset or empty.
var ErrMissingEnv = errors.New("missing required environment variable")

type Config struct {
	DBURL      string
	DBDriver   string
	DBLogLevel string
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	dbURL, err := mustEnv("DB_URL")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBURL:      dbURL,
		DBDriver:   getEnv("DB_DRIVER", DriverPgx),
		DBLogLevel: getEnv("DB_LOG_LEVEL", "warn"),
	}

	if cfg.DBDriver != DriverPgx && cfg.DBDriver != DriverPq {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, key)
	}
	return v, nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
