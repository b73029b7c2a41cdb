// Package config keeps program configuration: logging setup, font registry
// options and the YAML style document schema the CLI compiles.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type RegistryConfig struct {
	// BaseDir anchors relative font URLs on the local filesystem.
	BaseDir string `yaml:"base_dir,omitempty"`
	// CachePath enables the persistent font fetch cache when set.
	CachePath string `yaml:"cache_path,omitempty"`
	// TimeoutSec bounds a single font fetch over the network.
	TimeoutSec int `yaml:"timeout_sec,omitempty"`
}

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Registry RegistryConfig `yaml:"registry"`
}

// Default returns built-in configuration values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "overwrite"},
		},
		Registry: RegistryConfig{
			BaseDir:    ".",
			TimeoutSec: 30,
		},
	}
}

// LoadConfiguration overlays configuration file values (when path is not
// empty) on top of defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration '%s': %w", path, err)
	}
	return cfg, nil
}

// Dump serializes configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	return data, nil
}
