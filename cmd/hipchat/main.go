// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

// Command hipchat is a command-line client for the HipChat v1 API.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dobarkod/hipchat-api/cmd/hipchat/commands"
)

func main() {
	if err := commands.Root().Execute(os.Args[1:]); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			if coder.ExitCode() != 0 {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
