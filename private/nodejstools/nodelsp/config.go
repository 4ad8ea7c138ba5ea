// Copyright 2024-2026 Lomheny, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// This file handles the nodejstools.yaml configuration file.

package nodelsp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the configuration file the server looks for, walking up
// from the workspace root.
const configFileName = "nodejstools.yaml"

// Config configures completion behavior per workspace.
type Config struct {
	// ExtraBuiltins adds module names to the built-in candidate list, for
	// hosts that register their own runtime modules.
	ExtraBuiltins []string `yaml:"extra_builtins"`
	// ExcludedDirs lists directory names skipped by the project walk.
	ExcludedDirs []string `yaml:"excluded_dirs"`
	// MaxWalkDepth bounds folder recursion during the project walk. Zero
	// means unbounded.
	MaxWalkDepth int `yaml:"max_walk_depth"`
	// DefaultQuote is the quote character wrapped around committed module
	// paths when the argument has no opening quote yet. One of ' or ".
	DefaultQuote string `yaml:"default_quote"`
}

func defaultConfig() *Config {
	return &Config{
		DefaultQuote: "'",
	}
}

func (c *Config) validate() error {
	if c.DefaultQuote != "'" && c.DefaultQuote != "\"" {
		return fmt.Errorf("default_quote must be ' or \", got %q", c.DefaultQuote)
	}
	if c.MaxWalkDepth < 0 {
		return fmt.Errorf("max_walk_depth must not be negative, got %d", c.MaxWalkDepth)
	}
	return nil
}

// loadConfig reads the configuration for a workspace rooted at dirPath,
// checking each ancestor directory. A missing file yields the defaults.
func loadConfig(dirPath string) (*Config, error) {
	for dir := filepath.Clean(dirPath); ; dir = filepath.Dir(dir) {
		data, err := os.ReadFile(filepath.Join(dir, configFileName))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			if parent := filepath.Dir(dir); parent != dir {
				continue
			}
			return defaultConfig(), nil
		}
		config := defaultConfig()
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configFileName, err)
		}
		if config.DefaultQuote == "" {
			config.DefaultQuote = "'"
		}
		if err := config.validate(); err != nil {
			return nil, err
		}
		return config, nil
	}
}
