package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default.conf
var defaultConf []byte

// DefaultName is the pseudo path that selects the embedded configuration.
const DefaultName = "default"

// Default returns a fresh copy of the embedded naval configuration.
func Default() *Config {
	cfg, err := Parse(bytes.NewReader(defaultConf))
	if err != nil {
		panic(fmt.Sprintf("config: embedded default: %v", err))
	}

	return cfg
}

// LoadFromPath reads a configuration file, choosing the format by extension.
// The name DefaultName returns Default().
func LoadFromPath(path string) (*Config, error) {
	if path == DefaultName {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Load(data, filepath.Ext(path))
}

// Load parses data. ext selects the format: ".yaml" and ".yml" are YAML,
// anything else is the text format.
func Load(data []byte, ext string) (*Config, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(bytes.NewReader(data))
	default:
		return Parse(bytes.NewReader(data))
	}
}
