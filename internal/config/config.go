// Package config reads the service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Host        string
	Port        string
	Environment string
	LogLevel    string

	// DatabaseURL is a PostgreSQL DSN. Empty or placeholder values switch the
	// service to demo mode.
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	SessionSecret string
	AdminPassword string

	UploadDir     string
	PublicBaseURL string

	ShutdownTimeout time.Duration
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() Config {
	return Config{
		Host:            GetEnv("HOST", ""),
		Port:            GetEnv("PORT", "8080"),
		Environment:     GetEnv("ENVIRONMENT", EnvDevelopment),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		DatabaseURL:     GetEnv("DATABASE_URL", ""),
		MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		SessionSecret:   GetEnv("ADMIN_SESSION_SECRET", "default-secret-change-me"),
		AdminPassword:   GetEnv("ADMIN_PASSWORD", ""),
		UploadDir:       GetEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL:   strings.TrimRight(GetEnv("PUBLIC_BASE_URL", ""), "/"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// DemoMode reports whether the database is unconfigured.
func (c Config) DemoMode() bool {
	return c.DatabaseURL == "" || strings.Contains(c.DatabaseURL, "placeholder")
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Validate checks the values that would otherwise fail late.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d is out of range: must be between 1 and 65535", port)
	}
	if c.UploadDir == "" {
		return errors.New("UPLOAD_DIR must not be empty")
	}
	return nil
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
