// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads the optional YAML configuration of the srp command.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Nil fields are unset and
// leave the command defaults in place.
type FileConfig struct {
	Points      *int     `yaml:"points"`
	ProbeRadius *float64 `yaml:"probe_radius"`
	Threads     *int     `yaml:"threads"`
	Weighted    *bool    `yaml:"weighted"`
}

// ErrNotFound is returned by LoadLocal when no config file exists.
var ErrNotFound = errors.New("config: no config file found")

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal looks for .srp.yml, .srp.yaml, srp.yml or srp.yaml in dir.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range []string{".srp.yml", ".srp.yaml", "srp.yml", "srp.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNotFound
}

// Merge returns c with every field set in other taking precedence.
func (c FileConfig) Merge(other FileConfig) FileConfig {
	if other.Points != nil {
		c.Points = other.Points
	}
	if other.ProbeRadius != nil {
		c.ProbeRadius = other.ProbeRadius
	}
	if other.Threads != nil {
		c.Threads = other.Threads
	}
	if other.Weighted != nil {
		c.Weighted = other.Weighted
	}
	return c
}
