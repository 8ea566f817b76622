package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		LogLevel     string
	}

	OpenMeteo struct {
		GeocodingURL string
		ForecastURL  string
		Language     string
		Timeout      time.Duration
	}

	CircuitBreaker struct {
		Threshold int
		Timeout   time.Duration
	}

	Probe struct {
		Enabled  bool
		Schedule string
		City     string
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"), 10*time.Second)
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"), 10*time.Second)
	cfg.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	// Open-Meteo configuration
	cfg.OpenMeteo.GeocodingURL = getEnv("OPENMETEO_GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1")
	cfg.OpenMeteo.ForecastURL = getEnv("OPENMETEO_URL", "https://api.open-meteo.com/v1")
	cfg.OpenMeteo.Language = getEnv("GEOCODING_LANGUAGE", "en")
	cfg.OpenMeteo.Timeout = parseDuration(getEnv("HTTP_TIMEOUT", "10s"), 10*time.Second)

	// Circuit breaker configuration
	cfg.CircuitBreaker.Threshold = parseInt(getEnv("CIRCUIT_BREAKER_THRESHOLD", "3"), 3)
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"), 30*time.Second)

	// Upstream probe configuration
	cfg.Probe.Enabled = parseBool(getEnv("PROBE_ENABLED", "true"))
	cfg.Probe.Schedule = getEnv("PROBE_SCHEDULE", "@every 5m")
	cfg.Probe.City = getEnv("PROBE_CITY", "London")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration returns fallback for malformed or non-positive values.
func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		zap.L().Warn("Invalid duration, using default",
			zap.String("value", value),
			zap.Duration("default", fallback),
			zap.Error(err))
		return fallback
	}
	return duration
}

// parseInt returns fallback for malformed or non-positive values.
func parseInt(value string, fallback int) int {
	intValue, err := strconv.Atoi(value)
	if err != nil || intValue <= 0 {
		zap.L().Warn("Invalid int, using default",
			zap.String("value", value),
			zap.Int("default", fallback),
			zap.Error(err))
		return fallback
	}
	return intValue
}

func parseBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		zap.L().Warn("Failed to parse bool", zap.String("value", value), zap.Error(err))
		return false
	}
	return boolValue
}
