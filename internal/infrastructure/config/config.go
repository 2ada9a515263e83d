package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Preferences
	PreferencesPath string `env:"PREFERENCES_PATH" envDefault:"preferences.json"`

	// Insights (optional - leave the key empty to disable the
	// external call; the panel then shows the fallback text)
	InsightsAPIKey  string        `env:"INSIGHTS_API_KEY"  envDefault:""`
	InsightsModel   string        `env:"INSIGHTS_MODEL"    envDefault:"gemini-3-flash-preview"`
	InsightsBaseURL string        `env:"INSIGHTS_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	InsightsTimeout time.Duration `env:"INSIGHTS_TIMEOUT"  envDefault:"20s"`
}

// Load loads configuration from the environment, reading a local
// .env file first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
