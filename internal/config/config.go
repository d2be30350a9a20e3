package config

import (
	"os"
	"strconv"
)

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string
	Format string
}

// ShapeConfig holds the numeric settings used by the polymorphism section.
type ShapeConfig struct {
	Pi        float64
	Precision int
}

// TracingConfig selects the span exporter. "none" keeps the no-op provider.
type TracingConfig struct {
	Exporter    string
	ServiceName string
	Pretty      bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Log     LogConfig
	Shapes  ShapeConfig
	Tracing TracingConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Shapes: ShapeConfig{
			Pi:        getEnvFloat("CHEATSHEET_PI", 3.14),
			Precision: getEnvInt("CHEATSHEET_AREA_PRECISION", 2),
		},
		Tracing: TracingConfig{
			Exporter:    getEnv("TRACE_EXPORTER", "none"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "oopcheatsheet"),
			Pretty:      getEnvBool("TRACE_PRETTY", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvFloat ignores unparsable and non-positive values.
func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && f > 0 {
			return f
		}
	}
	return def
}
