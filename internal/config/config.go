// Package config loads the DetectionThresholds section of a godscan config
// file, merging it over documented defaults, and validates the result
// against a JSON Schema before the engine ever sees it. The section name
// "DetectionThresholds" is matched case-insensitively by koanf, so
// "[detectionthresholds]" in a lowercased TOML file works too.
package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kestrelcode/godscan/pkg/thresholds"
)

// Config is the top-level file format. Only the DetectionThresholds and
// exclude sections are godscan-specific; everything else carries a
// sensible default so a minimal or absent config file still produces a
// usable run.
type Config struct {
	Thresholds thresholds.Thresholds `koanf:"DetectionThresholds"`
	Exclude    ExcludeConfig         `koanf:"exclude"`
}

// ExcludeConfig lists additional directory names to skip beyond
// pkg/tree.Builder's built-in exclusions.
type ExcludeConfig struct {
	Dirs []string `koanf:"dirs"`
}

// Default returns a Config seeded with thresholds.Default() and no extra
// exclusions.
func Default() *Config {
	return &Config{
		Thresholds: thresholds.Default(),
		Exclude:    ExcludeConfig{},
	}
}

// Load reads path, merges it over Default(), and validates the result.
// Keys the file omits keep their default value; keys the schema doesn't
// recognize are ignored by koanf's merge rather than rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	k := koanf.New(".")
	p, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(path), p); err != nil {
		return nil, err
	}
	if err := ValidateSchema(k.Raw()); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default() when path is
// empty or the file cannot be read, so a missing config file is never a
// hard failure for the CLI driver.
func LoadOrDefault(path string) *Config {
	if path == "" {
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return toml.Parser(), nil
	}
}
