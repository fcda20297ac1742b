// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesSubcommand(t *testing.T) {
	var gotArgs []string
	root := &Command{
		Name: "tool",
		Subcommands: []*Command{
			{
				Name: "run",
				Run: func(args []string) error {
					gotArgs = args
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"run", "alpha", "beta"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(gotArgs) != 2 || gotArgs[0] != "alpha" || gotArgs[1] != "beta" {
		t.Errorf("subcommand args = %v, want [alpha beta]", gotArgs)
	}
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "tool",
		Subcommands: []*Command{
			{Name: "list", Run: func([]string) error { return nil }},
			{Name: "delete", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"lst"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "list"`) {
		t.Errorf("error %q does not suggest %q", err.Error(), "list")
	}
}

func TestExecuteUnknownCommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "tool",
		Subcommands: []*Command{
			{Name: "list", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"zzzzzzzzz"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error %q suggests a match for gibberish", err.Error())
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	var verbose bool
	var gotArgs []string
	command := &Command{
		Name: "run",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			flagSet.BoolVar(&verbose, "verbose", false, "")
			return flagSet
		},
		Run: func(args []string) error {
			gotArgs = args
			return nil
		},
	}

	if err := command.Execute([]string{"--verbose", "target"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !verbose {
		t.Error("--verbose flag not parsed")
	}
	if len(gotArgs) != 1 || gotArgs[0] != "target" {
		t.Errorf("positional args = %v, want [target]", gotArgs)
	}
}

func TestExecuteUnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "run",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			flagSet.Bool("verbose", false, "")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}

	err := command.Execute([]string{"--verbos"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--verbose") {
		t.Errorf("error %q does not suggest --verbose", err.Error())
	}
}

func TestExecuteGroupWithoutSubcommand(t *testing.T) {
	root := &Command{
		Name: "tool",
		Subcommands: []*Command{
			{Name: "list", Run: func([]string) error { return nil }},
		},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("expected error when no subcommand given")
	}
}

func TestPrintHelpListsSubcommands(t *testing.T) {
	root := &Command{
		Name:    "tool",
		Summary: "A tool.",
		Subcommands: []*Command{
			{Name: "list", Summary: "List things"},
			{Name: "delete", Summary: "Delete things"},
		},
	}

	var out strings.Builder
	root.PrintHelp(&out)
	help := out.String()
	for _, want := range []string{"list", "List things", "delete", "Delete things"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestFullName(t *testing.T) {
	root := &Command{Name: "tool"}
	group := &Command{Name: "room", parent: root}
	leaf := &Command{Name: "show", parent: group}

	if got := leaf.fullName(); got != "tool room show" {
		t.Errorf("fullName() = %q, want %q", got, "tool room show")
	}
}
