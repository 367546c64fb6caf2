package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Anomaly  AnomalyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Version        string
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AnomalyConfig holds detector thresholds. Zero values fall back to the
// detector defaults.
type AnomalyConfig struct {
	MissedClockOutAfter    time.Duration
	ExcessiveOvertimeHours float64
	ExcessiveBreakMinutes  int
}

func Load() (*Config, error) {
	// A missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clockwise-attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	origins := getEnvSlice("ALLOWED_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "clockwise-attendance"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: origins,
	}

	// Anomaly detector thresholds
	missedAfter, err := time.ParseDuration(getEnv("ANOMALY_MISSED_CLOCK_OUT_AFTER", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANOMALY_MISSED_CLOCK_OUT_AFTER: %w", err)
	}

	overtimeHours, err := strconv.ParseFloat(getEnv("ANOMALY_EXCESSIVE_OVERTIME_HOURS", "4"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ANOMALY_EXCESSIVE_OVERTIME_HOURS: %w", err)
	}

	breakMinutes, err := strconv.Atoi(getEnv("ANOMALY_EXCESSIVE_BREAK_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANOMALY_EXCESSIVE_BREAK_MINUTES: %w", err)
	}

	config.Anomaly = AnomalyConfig{
		MissedClockOutAfter:    missedAfter,
		ExcessiveOvertimeHours: overtimeHours,
		ExcessiveBreakMinutes:  breakMinutes,
	}

	return config, nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
