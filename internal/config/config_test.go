package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("default port = %d", cfg.Port)
	}
	if cfg.ContentMode != ModeTemplate {
		t.Errorf("default mode = %q", cfg.ContentMode)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CONTENT_MODE", "gemini")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("ARCHIVE_PATH", "/tmp/archive.db")
	t.Setenv("SEED", "42")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9000 || cfg.GeminiKey != "key-123" || cfg.Seed != 42 {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("CONTENT_MODE", "markov")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "CONTENT_MODE") {
		t.Errorf("got %v, want unknown-mode error", err)
	}
}

func TestLoadRequiresKeyForGemini(t *testing.T) {
	t.Setenv("CONTENT_MODE", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Error("gemini mode without a key should fail")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "-1")
	if _, err := Load(); err == nil {
		t.Error("negative port should fail")
	}
}
