package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ytget/offgrid/internal/platform"
)

// PDF fetch engines
const (
	PDFEngineHTTP = "http"
	PDFEngineGot  = "got"
)

// DefaultUserAgent is sent with direct PDF downloads
const DefaultUserAgent = "offgrid/1.0 (+https://github.com/ytget/offgrid)"

// Env holds the synchronizer configuration read from the environment.
// Command-line flags override these values.
type Env struct {
	BaseDir      string        `env:"OFFGRID_BASE_DIR"`
	ManifestPath string        `env:"OFFGRID_MANIFEST"`
	LogLevel     string        `env:"OFFGRID_LOG_LEVEL" envDefault:"info"`
	PDFEngine    string        `env:"OFFGRID_PDF_ENGINE" envDefault:"http"`
	UserAgent    string        `env:"OFFGRID_USER_AGENT" envDefault:"offgrid/1.0 (+https://github.com/ytget/offgrid)"`
	HTTPTimeout  time.Duration `env:"OFFGRID_HTTP_TIMEOUT" envDefault:"30m"`
}

// LoadEnv parses the environment and fills computed defaults
func LoadEnv() (Env, error) {
	cfg, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = platform.DefaultBaseDir()
	}
	if err := cfg.Validate(); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values
func (e Env) Validate() error {
	switch e.PDFEngine {
	case PDFEngineHTTP, PDFEngineGot:
	default:
		return fmt.Errorf("unknown pdf engine: %s (expected %s or %s)", e.PDFEngine, PDFEngineHTTP, PDFEngineGot)
	}
	if e.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative: %s", e.HTTPTimeout)
	}
	return nil
}
