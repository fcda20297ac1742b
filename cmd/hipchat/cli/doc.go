// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the hipchat binary.
//
// [Command] is a tree of subcommands dispatched by positional
// arguments, with flags parsed by spf13/pflag. Unknown commands and
// flags produce a "did you mean" suggestion based on edit distance.
// Help output is synthesized from each command's Summary, Description,
// Usage, Examples, and flag set.
//
// [SessionConfig] carries the flags shared by every command that talks
// to the API (--config, --auth-token-file, --base-url, --from) and
// builds the authenticated client. The token is resolved from the flag,
// the HIPCHAT_AUTH_TOKEN_FILE environment variable, or the config file,
// in that order; when none is set the user is prompted on the terminal
// with echo disabled.
//
// [JSONOutput] adds the --json flag to a command, and [ExitError] lets
// a command exit non-zero without an extra error message.
package cli
