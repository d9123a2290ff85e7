package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultAddr = "0.0.0.0:8080"
	DefaultRoot = "."
)

type Config struct {
	Server ServerConfig `yaml:"server"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Root string `yaml:"root"`
}

// Load reads the YAML file at path into v. A missing file is not an error;
// fields left empty fall back to the defaults either way.
func Load(path string, v *Config) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err == nil {
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if v.Server.Addr == "" {
		v.Server.Addr = DefaultAddr
	}
	if v.Server.Root == "" {
		v.Server.Root = DefaultRoot
	}

	return nil
}
