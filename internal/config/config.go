// Package config loads the decaytable CLI settings file.
package config

import (
	"fmt"
	"os"

	"github.com/aretw0/decaytable/pkg/chain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "decaytable.yaml"

// Config holds CLI settings. Flags override every field.
type Config struct {
	// ParticleDB is a YAML particle catalogue. Empty selects the built-in one.
	ParticleDB string   `yaml:"particle_db"`
	Stable     []string `yaml:"stable"`
	LogLevel   string   `yaml:"log_level"`
	MaxDepth   int      `yaml:"max_depth"`

	// ChargeConjugates disables CDecay synthesis when set to false.
	ChargeConjugates *bool `yaml:"charge_conjugates"`

	Descriptor Descriptor `yaml:"descriptor"`
}

// Descriptor holds the chain descriptor patterns.
type Descriptor struct {
	Outer string `yaml:"outer"`
	Inner string `yaml:"inner"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		LogLevel: "warn",
		MaxDepth: chain.DefaultMaxDepth,
		Descriptor: Descriptor{
			Outer: chain.DefaultOuter,
			Inner: chain.DefaultInner,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error
// unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("%s: max_depth must not be negative", path)
	}
	return cfg, nil
}

// IncludeChargeConjugates reports whether CDecay statements are honoured.
func (c Config) IncludeChargeConjugates() bool {
	return c.ChargeConjugates == nil || *c.ChargeConjugates
}
