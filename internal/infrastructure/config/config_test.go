package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.HTTPShutdownTimeout != 10*time.Second {
		t.Errorf("HTTPShutdownTimeout = %v, want 10s", cfg.HTTPShutdownTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("unexpected log config %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.PreferencesPath != "preferences.json" {
		t.Errorf("PreferencesPath = %q", cfg.PreferencesPath)
	}
	if cfg.InsightsAPIKey != "" {
		t.Errorf("InsightsAPIKey should default empty, got %q", cfg.InsightsAPIKey)
	}
	if cfg.InsightsModel != "gemini-3-flash-preview" {
		t.Errorf("InsightsModel = %q", cfg.InsightsModel)
	}
	if cfg.InsightsBaseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("InsightsBaseURL = %q", cfg.InsightsBaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("PREFERENCES_PATH", "/var/lib/ledger/preferences.json")
	t.Setenv("INSIGHTS_API_KEY", "secret")
	t.Setenv("INSIGHTS_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.HTTPReadTimeout != 5*time.Second {
		t.Errorf("HTTPReadTimeout = %v, want 5s", cfg.HTTPReadTimeout)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "console" {
		t.Errorf("unexpected log config %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.PreferencesPath != "/var/lib/ledger/preferences.json" {
		t.Errorf("PreferencesPath = %q", cfg.PreferencesPath)
	}
	if cfg.InsightsAPIKey != "secret" {
		t.Errorf("InsightsAPIKey = %q", cfg.InsightsAPIKey)
	}
	if cfg.InsightsTimeout != 3*time.Second {
		t.Errorf("InsightsTimeout = %v, want 3s", cfg.InsightsTimeout)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error, got nil")
	}
}
