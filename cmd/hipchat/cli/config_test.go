// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := writeConfigFile(t, `
auth_token_file: /run/secrets/hipchat-token
base_url: https://hipchat.internal/v1
from: Deploy Bot
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.AuthTokenFile != "/run/secrets/hipchat-token" {
		t.Errorf("AuthTokenFile = %q", config.AuthTokenFile)
	}
	if config.BaseURL != "https://hipchat.internal/v1" {
		t.Errorf("BaseURL = %q", config.BaseURL)
	}
	if config.From != "Deploy Bot" {
		t.Errorf("From = %q", config.From)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	path := writeConfigFile(t, "from: EnvBot\n")
	t.Setenv(EnvConfig, path)

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.From != "EnvBot" {
		t.Errorf("From = %q, want EnvBot", config.From)
	}
}

func TestLoadConfigExplicitPathWinsOverEnvironment(t *testing.T) {
	envPath := writeConfigFile(t, "from: EnvBot\n")
	flagPath := writeConfigFile(t, "from: FlagBot\n")
	t.Setenv(EnvConfig, envPath)

	config, err := LoadConfig(flagPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.From != "FlagBot" {
		t.Errorf("From = %q, want FlagBot", config.From)
	}
}

func TestLoadConfigNoFile(t *testing.T) {
	t.Setenv(EnvConfig, "")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config != (Config{}) {
		t.Errorf("config = %+v, want zero value", config)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "base_url: [unclosed\n")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error %q does not mention parse failure", err.Error())
	}
}
