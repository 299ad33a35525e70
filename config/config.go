// Package config loads the service configuration from JSON or YAML files
// with environment-variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/warebotics/waresim/metrics"
	"github.com/warebotics/waresim/simulator"
)

type Config struct {
	Grid      GridConfig       `json:"grid"`
	Simulator simulator.Config `json:"simulator"`
	Metrics   metrics.Config   `json:"metrics"`
	Demand    DemandConfig     `json:"demand"`
	Logging   LoggingConfig    `json:"logging"`
}

// Default returns a runnable configuration without reading any file.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Grid.SetDefaults()
	c.Simulator.SetDefaults()
	c.Metrics.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if err := c.Simulator.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Load reads the file at path. The format follows the extension; WS_
// prefixed environment variables override file values (WS_GRID__ROWS
// overrides grid.rows).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("WS_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ws_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
