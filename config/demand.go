package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/warebotics/waresim/core/demand"
)

// DemandConfig points at the historical order-frequency data file.
type DemandConfig struct {
	// Path to a JSON or YAML demand table. Empty means the built-in
	// default table.
	Path string `json:"path"`
}

// LoadTable reads the demand table referenced by the config, falling back
// to the built-in table when no path is set.
func (c DemandConfig) LoadTable() (demand.Table, error) {
	if c.Path == "" {
		return demand.DefaultTable(), nil
	}
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return demand.Table{}, fmt.Errorf("unsupported demand table format: %s", c.Path)
	}
	if err := k.Load(file.Provider(c.Path), parser); err != nil {
		return demand.Table{}, err
	}
	var table demand.Table
	if err := k.UnmarshalWithConf("", &table, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return demand.Table{}, err
	}
	if len(table.Categories) == 0 {
		return demand.Table{}, fmt.Errorf("demand table %s has no categories", c.Path)
	}
	return table, nil
}
