package config

import (
	"testing"
	"time"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}

	if cfg.BaseDir == "" {
		t.Error("Expected a computed default base directory")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.PDFEngine != PDFEngineHTTP {
		t.Errorf("Expected pdf engine %s, got %s", PDFEngineHTTP, cfg.PDFEngine)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("Expected user agent %s, got %s", DefaultUserAgent, cfg.UserAgent)
	}
	if cfg.HTTPTimeout != 30*time.Minute {
		t.Errorf("Expected timeout 30m, got %s", cfg.HTTPTimeout)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("OFFGRID_BASE_DIR", "/srv/offgrid")
	t.Setenv("OFFGRID_PDF_ENGINE", "got")
	t.Setenv("OFFGRID_HTTP_TIMEOUT", "90s")

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}

	if cfg.BaseDir != "/srv/offgrid" {
		t.Errorf("Expected base dir /srv/offgrid, got %s", cfg.BaseDir)
	}
	if cfg.PDFEngine != PDFEngineGot {
		t.Errorf("Expected pdf engine got, got %s", cfg.PDFEngine)
	}
	if cfg.HTTPTimeout != 90*time.Second {
		t.Errorf("Expected timeout 90s, got %s", cfg.HTTPTimeout)
	}
}

func TestLoadEnv_InvalidEngine(t *testing.T) {
	t.Setenv("OFFGRID_PDF_ENGINE", "curl")

	if _, err := LoadEnv(); err == nil {
		t.Error("Expected error for unknown pdf engine, got nil")
	}
}
