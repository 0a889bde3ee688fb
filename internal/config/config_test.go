package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "HTTP_TIMEOUT",
		"PROBE_CITIES", "PROBE_INTERVAL", "PORT", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherBaseURL != providers.OpenWeatherBaseURL {
		t.Errorf("unexpected base url %q", cfg.OpenWeatherBaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.ProbeInterval != 15*time.Minute {
		t.Errorf("expected 15m interval, got %v", cfg.ProbeInterval)
	}
	if len(cfg.ProbeCities) != 0 {
		t.Errorf("expected no probe cities, got %v", cfg.ProbeCities)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected port/log level %q/%q", cfg.Port, cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_API_KEY", "  abc  ")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PROBE_CITIES", "Москва, Paris ,,Berlin")
	t.Setenv("PROBE_INTERVAL", "1m")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "abc" {
		t.Errorf("expected trimmed key, got %q", cfg.OpenWeatherAPIKey)
	}
	if got := cfg.Credentials()["api_key"]; got != "abc" {
		t.Errorf("unexpected credentials key %q", got)
	}
	if cfg.HTTPTimeout != 3*time.Second || cfg.ProbeInterval != time.Minute {
		t.Errorf("unexpected durations %v/%v", cfg.HTTPTimeout, cfg.ProbeInterval)
	}
	want := []string{"Москва", "Paris", "Berlin"}
	if !reflect.DeepEqual(cfg.ProbeCities, want) {
		t.Errorf("expected %v, got %v", want, cfg.ProbeCities)
	}
	if cfg.Port != "9090" {
		t.Errorf("unexpected port %q", cfg.Port)
	}
}

func TestLoadInvalidDurations(t *testing.T) {
	for _, tc := range []struct{ key, value string }{
		{"HTTP_TIMEOUT", "soon"},
		{"HTTP_TIMEOUT", "-1s"},
		{"PROBE_INTERVAL", "often"},
		{"PROBE_INTERVAL", "0s"},
	} {
		clearEnv(t)
		t.Setenv(tc.key, tc.value)
		if _, err := Load(); err == nil {
			t.Errorf("%s=%s: expected error", tc.key, tc.value)
		}
	}
}
