package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

type AppConfig struct {
	// OpenWeatherAPIKey is the static key passed as credentials["api_key"].
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string

	// HTTPTimeout bounds each outbound lookup.
	HTTPTimeout time.Duration

	// Cities probed by the scheduler; empty disables probing.
	ProbeCities   []string
	ProbeInterval time.Duration

	Port     string
	LogLevel string
}

// Load reads configuration from environment with sensible defaults.
// Callers load a .env file beforehand if they want one.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY"))
	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", providers.OpenWeatherBaseURL)

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", providers.DefaultTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.HTTPTimeout = timeout

	// Probe interval: default 15 minutes.
	interval, err := time.ParseDuration(getenvDefault("PROBE_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: must be positive, got %s", interval)
	}
	cfg.ProbeInterval = interval
	cfg.ProbeCities = splitList(os.Getenv("PROBE_CITIES"))

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	return cfg, nil
}

// Credentials returns the mapping expected by weather.Service.Lookup.
func (c *AppConfig) Credentials() map[string]string {
	return map[string]string{"api_key": c.OpenWeatherAPIKey}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
