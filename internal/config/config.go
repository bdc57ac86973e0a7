// Package config loads server settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// Debug enables verbose logging and gin's debug mode.
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Addr: ":8080"}
}

// Load reads a YAML config file. Fields missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	return cfg, nil
}
