// Package config loads generator settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/metalagman/entrygen"
)

// File mirrors the YAML layout of a config file.
type File struct {
	Generator entrygen.Config `yaml:"generator"`
	Log       Log             `yaml:"log"`
}

// Log holds logging settings.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings used when no file is present.
func Default() File {
	return File{
		Generator: entrygen.DefaultConfig(),
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults.
// A missing file yields the defaults without error.
func Load(path string) (File, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Generator.Validate(); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
