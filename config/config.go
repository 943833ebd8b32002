// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the TOML configuration for a sceneview host.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the host configuration.
type Config struct {

	// Listen is the address the property server listens on.
	Listen string `toml:"listen"`

	// Scene is the path of the scene archive file to watch
	// and publish.
	Scene string `toml:"scene"`

	// Append sets the initial append flag: whether scene updates
	// add to the displayed actors instead of replacing them.
	Append bool `toml:"append"`

	// Width is the container width in layout units; 0 for unset.
	Width int `toml:"width"`

	// Height is the container height in layout units; 0 for unset.
	Height int `toml:"height"`
}

// Defaults sets default configuration values.
func (cf *Config) Defaults() {
	cf.Listen = "localhost:8765"
}

// Open reads the configuration from the given TOML file,
// starting from defaults.
func Open(filename string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", filename, err)
	}
	if err := toml.Unmarshal(data, cf); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", filename, err)
	}
	return cf, nil
}

// Save writes the configuration to the given TOML file.
func (cf *Config) Save(filename string) error {
	data, err := toml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o666); err != nil {
		return fmt.Errorf("config: writing %s: %w", filename, err)
	}
	return nil
}
