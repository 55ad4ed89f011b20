package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/offgrid/internal/model"
)

//go:embed default_manifest.yaml
var defaultManifest []byte

// DefaultManifest returns the built-in manifest
func DefaultManifest() (model.Manifest, error) {
	return ParseManifest(defaultManifest)
}

// LoadManifest reads a manifest from path, or returns the built-in one when path is empty
func LoadManifest(path string) (model.Manifest, error) {
	if path == "" {
		return DefaultManifest()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return model.Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes and validates a YAML manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (model.Manifest, error) {
	var m model.Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return model.Manifest{}, fmt.Errorf("failed to decode manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return model.Manifest{}, fmt.Errorf("invalid manifest: %w", err)
	}
	return m, nil
}
