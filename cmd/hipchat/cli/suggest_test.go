// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"list", "lst", 1},
		{"topic", "topci", 2},
		{"history", "histroy", 2},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "list"},
		{Name: "show"},
		{Name: "history"},
	}

	if got := suggestCommand("histroy", commands); got != "history" {
		t.Errorf("suggestCommand(histroy) = %q, want history", got)
	}
	if got := suggestCommand("qqqqqqqqqqq", commands); got != "" {
		t.Errorf("suggestCommand(gibberish) = %q, want empty", got)
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.Bool("verbose", false, "")
	flagSet.String("base-url", "", "")

	if got := suggestFlag([]string{"--verbos"}, flagSet); got != "--verbose" {
		t.Errorf("suggestFlag(--verbos) = %q, want --verbose", got)
	}
	if got := suggestFlag([]string{"--base-ur=x"}, flagSet); got != "--base-url" {
		t.Errorf("suggestFlag(--base-ur=x) = %q, want --base-url", got)
	}
	if got := suggestFlag([]string{"--verbose"}, flagSet); got != "" {
		t.Errorf("suggestFlag(known flag) = %q, want empty", got)
	}
	if got := suggestFlag([]string{"positional"}, flagSet); got != "" {
		t.Errorf("suggestFlag(positional) = %q, want empty", got)
	}
}
