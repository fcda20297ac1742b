// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfig is the environment variable naming the config file.
const EnvConfig = "HIPCHAT_CONFIG"

// Config is the CLI configuration file. All fields are optional; flags
// override them. Configuration is loaded from a single file named by
// the --config flag or the HIPCHAT_CONFIG environment variable — there
// is no discovery or fallback chain, so what runs is what was named.
type Config struct {
	// AuthTokenFile is the path of a file holding the API token.
	AuthTokenFile string `yaml:"auth_token_file"`
	// BaseURL overrides the production API endpoint.
	BaseURL string `yaml:"base_url"`
	// From is the sender name for topic changes and messages.
	From string `yaml:"from"`
}

// LoadConfig reads the config file named by explicitPath, or by the
// HIPCHAT_CONFIG environment variable when explicitPath is empty.
// When neither names a file, an empty Config is returned: the CLI works
// from flags alone.
func LoadConfig(explicitPath string) (Config, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}
