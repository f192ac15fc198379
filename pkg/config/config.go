/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads the CLI configuration from a JSON or YAML file
// with environment variable overrides.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simplewatch/simplewatch/pkg/logger"
)

var (
	errServerURLRequired = errors.New("server_url is required")
	errUnknownFormat     = errors.New("config file must be .json, .yaml or .yml")
)

// Config is the monitorctl configuration.
type Config struct {
	// ServerURL is the base URL of the monitoring server, e.g.
	// "https://watch.example.com".
	ServerURL string `json:"server_url" yaml:"server_url"`
	// APIToken authenticates management API calls. Distinct from the
	// per-service ingestion api_key.
	APIToken string         `json:"api_token,omitempty" yaml:"api_token,omitempty"`
	Logging  *logger.Config `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// Load reads the config file at path, applies environment overrides,
// and validates the result. An empty path skips the file and builds
// the config from the environment alone.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if cfg.Logging == nil {
		cfg.Logging = logger.DefaultConfig()
	}

	if strings.TrimSpace(cfg.ServerURL) == "" {
		return nil, errServerURLRequired
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, path)
	}

	if err != nil {
		return fmt.Errorf("failed to unmarshal '%s': %w", path, err)
	}

	return nil
}

// applyEnv lets deployment environments override file settings
// without editing the file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SIMPLEWATCH_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}

	if v := os.Getenv("SIMPLEWATCH_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
}
