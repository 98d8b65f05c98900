// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Content modes. Template serves canned content only; gemini generates
// content through the external model and falls back to templates on error.
const (
	ModeTemplate = "template"
	ModeGemini   = "gemini"
)

// Config is the full runtime configuration of the server.
type Config struct {
	Port        int      `env:"PORT" envDefault:"8080"`
	ContentMode string   `env:"CONTENT_MODE" envDefault:"template"`
	GeminiKey   string   `env:"GEMINI_API_KEY"`
	GeminiModel string   `env:"GEMINI_MODEL"`
	ArchivePath string   `env:"ARCHIVE_PATH"`
	Seed        int64    `env:"SEED"`
	CORSOrigins []string `env:"CORS_ORIGINS"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.ContentMode {
	case ModeTemplate, ModeGemini:
	default:
		return fmt.Errorf("unknown CONTENT_MODE %q (want %s or %s)", c.ContentMode, ModeTemplate, ModeGemini)
	}
	if c.ContentMode == ModeGemini && c.GeminiKey == "" {
		return fmt.Errorf("CONTENT_MODE=%s requires GEMINI_API_KEY", ModeGemini)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	return nil
}
