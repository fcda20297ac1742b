// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/dobarkod/hipchat-api/hipchat"
	"github.com/dobarkod/hipchat-api/lib/secret"
)

// EnvAuthTokenFile is the environment variable naming the token file,
// checked when --auth-token-file is not set.
const EnvAuthTokenFile = "HIPCHAT_AUTH_TOKEN_FILE"

// SessionConfig holds the shared flags for connecting to the HipChat
// API. Every command that issues requests embeds one.
//
// The token is resolved in order: --auth-token-file, the
// HIPCHAT_AUTH_TOKEN_FILE environment variable, the config file's
// auth_token_file. When none is set, the user is prompted on the
// terminal with echo disabled. A token file path of "-" reads the token
// from stdin.
//
// Usage pattern:
//
//	var session cli.SessionConfig
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet {
//	        flagSet := pflag.NewFlagSet("mycommand", pflag.ContinueOnError)
//	        session.AddFlags(flagSet)
//	        return flagSet
//	    },
//	    Run: func(args []string) error {
//	        client, err := session.Connect()
//	        ...
//	    },
//	}
type SessionConfig struct {
	ConfigPath    string
	AuthTokenFile string
	BaseURL       string
	From          string
}

// AddFlags registers --config, --auth-token-file, --base-url, and
// --from on the given flag set.
func (c *SessionConfig) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.ConfigPath, "config", "", "path to YAML config file (default $HIPCHAT_CONFIG)")
	flagSet.StringVar(&c.AuthTokenFile, "auth-token-file", "", "path to a file holding the API token, or - for stdin")
	flagSet.StringVar(&c.BaseURL, "base-url", "", "API base URL (default "+hipchat.DefaultBaseURL+")")
	flagSet.StringVar(&c.From, "from", "", "sender name for topic changes and messages")
}

// Connect resolves configuration and builds an authenticated client.
// The caller owns the client and must Close it to release the token.
func (c *SessionConfig) Connect() (*hipchat.Client, error) {
	config, err := LoadConfig(c.ConfigPath)
	if err != nil {
		return nil, err
	}

	tokenPath := c.AuthTokenFile
	if tokenPath == "" {
		tokenPath = os.Getenv(EnvAuthTokenFile)
	}
	if tokenPath == "" {
		tokenPath = config.AuthTokenFile
	}

	var token *secret.Buffer
	if tokenPath != "" {
		token, err = secret.ReadFromPath(tokenPath)
		if err != nil {
			return nil, fmt.Errorf("read auth token: %w", err)
		}
	} else {
		token, err = secret.ReadFromTerminal("HipChat auth token: ")
		if err != nil {
			return nil, fmt.Errorf("read auth token: %w", err)
		}
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = config.BaseURL
	}
	from := c.From
	if from == "" {
		from = config.From
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	client, err := hipchat.NewClient(hipchat.ClientConfig{
		AuthToken: token,
		BaseURL:   baseURL,
		FromName:  from,
		Logger:    logger,
	})
	if err != nil {
		token.Close()
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}
