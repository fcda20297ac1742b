// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the hipchat command tree.
package commands

import (
	"github.com/dobarkod/hipchat-api/cmd/hipchat/cli"
)

// Root returns the top-level hipchat command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "hipchat",
		Summary: "HipChat v1 API client",
		Description: `Command-line client for the HipChat v1 API.

Every command needs an auth token. Point --auth-token-file (or the
HIPCHAT_AUTH_TOKEN_FILE environment variable) at a file holding the
token, or set auth_token_file in a config file named by --config or
HIPCHAT_CONFIG. With none of those set, the token is prompted for on
the terminal.`,
		Subcommands: []*cli.Command{
			RoomCommand(),
			UserCommand(),
		},
	}
}
