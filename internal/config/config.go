package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds process-wide configuration, built once at startup and
// passed into the components that need it.
type AppConfig struct {
	// API keys for the two external lookup services. Missing keys degrade
	// the corresponding lookup to a request error at call time rather than
	// failing startup.
	OpenWeatherAPIKey    string
	VisualCrossingAPIKey string

	// Optional Google geocoding key for camera locality labels.
	GeocoderAPIKey string

	// DatabasePath locates the embedded SQLite database. Empty selects the
	// in-memory store.
	DatabasePath string

	// HTTPTimeout bounds each outbound lookup call.
	HTTPTimeout time.Duration

	// SummaryInterval controls how often the dashboard summary is refreshed.
	SummaryInterval time.Duration

	Port string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.VisualCrossingAPIKey = os.Getenv("VISUALCROSSING_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.DatabasePath = os.Getenv("DATABASE_PATH")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	intervalStr := getenvDefault("SUMMARY_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SUMMARY_INTERVAL: %w", err)
	}
	cfg.SummaryInterval = interval

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
