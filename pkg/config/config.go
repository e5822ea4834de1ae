// Package config loads the optional medtrack.yaml and resolves the app's
// static constants with sensible defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "medtrack.yaml"

// Defaults applied by Resolve when the file is absent or a field is empty.
const (
	DefaultAppName        = "MedTrack"
	DefaultSchemaVersion  = "1.0.0"
	DefaultRemoteEndpoint = "https://api.medtrack.example/v1"
	DefaultCachePath      = "medications.cache.yaml"
	DefaultPageSize       = 20
)

// supportedSchemaMajor is the config schema major version this build reads.
const supportedSchemaMajor = "v1"

// Config mirrors the medtrack.yaml layout.
type Config struct {
	App  AppConfig  `yaml:"app"`
	Data DataConfig `yaml:"data"`
	UI   UIConfig   `yaml:"ui"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name          string `yaml:"name,omitempty"`
	SchemaVersion string `yaml:"schemaVersion,omitempty"`
}

// DataConfig contains data-layer settings.
type DataConfig struct {
	RemoteEndpoint string `yaml:"remoteEndpoint,omitempty"`
	CachePath      string `yaml:"cachePath,omitempty"`
	PageSize       int    `yaml:"pageSize,omitempty"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	Brightness string `yaml:"brightness,omitempty"`
}

// Resolved contains fully-defaulted configuration values.
type Resolved struct {
	AppName        string
	SchemaVersion  string
	RemoteEndpoint string
	CachePath      string
	PageSize       int
	Brightness     string
}

// LoadOptional reads medtrack.yaml from dir if present. A missing file is
// not an error; an unparsable one is.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads medtrack.yaml (if present), fills defaults, and validates
// the schema version.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		AppName:        strings.TrimSpace(cfg.App.Name),
		SchemaVersion:  strings.TrimSpace(cfg.App.SchemaVersion),
		RemoteEndpoint: strings.TrimSpace(cfg.Data.RemoteEndpoint),
		CachePath:      strings.TrimSpace(cfg.Data.CachePath),
		PageSize:       cfg.Data.PageSize,
		Brightness:     strings.TrimSpace(cfg.UI.Brightness),
	}

	if r.AppName == "" {
		r.AppName = DefaultAppName
	}
	if r.SchemaVersion == "" {
		r.SchemaVersion = DefaultSchemaVersion
	}
	if r.RemoteEndpoint == "" {
		r.RemoteEndpoint = DefaultRemoteEndpoint
	}
	if r.CachePath == "" {
		r.CachePath = DefaultCachePath
	}
	if r.PageSize <= 0 {
		r.PageSize = DefaultPageSize
	}
	if r.Brightness == "" {
		r.Brightness = "light"
	}

	if err := validateSchemaVersion(r.SchemaVersion); err != nil {
		return nil, err
	}
	if r.Brightness != "light" && r.Brightness != "dark" {
		return nil, fmt.Errorf("ui.brightness must be \"light\" or \"dark\", got %q", r.Brightness)
	}
	return r, nil
}

// validateSchemaVersion checks the version parses as semver and matches
// the supported major.
func validateSchemaVersion(v string) error {
	canonical := v
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return fmt.Errorf("app.schemaVersion %q is not a valid semantic version", v)
	}
	if semver.Major(canonical) != supportedSchemaMajor {
		return fmt.Errorf("app.schemaVersion %q is not supported (want major %s)", v, supportedSchemaMajor)
	}
	return nil
}
