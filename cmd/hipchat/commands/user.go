// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/dobarkod/hipchat-api/cmd/hipchat/cli"
	"github.com/dobarkod/hipchat-api/lib/ref"
)

// UserCommand returns the "user" subcommand group.
func UserCommand() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Summary: "Inspect group members",
		Subcommands: []*cli.Command{
			userListCommand(),
			userShowCommand(),
		},
	}
}

func userListCommand() *cli.Command {
	var session cli.SessionConfig
	var jsonOut cli.JSONOutput
	var includeDeleted bool

	return &cli.Command{
		Name:    "list",
		Summary: "List members of the group",
		Usage:   "hipchat user list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			jsonOut.AddFlags(flagSet)
			flagSet.BoolVar(&includeDeleted, "include-deleted", false, "include deleted members")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			client, err := session.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			users, err := client.Users.List(ctx, includeDeleted)
			if err != nil {
				return err
			}

			if done, err := jsonOut.EmitJSON(users); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tMENTION\tEMAIL\tSTATUS")
			for _, user := range users {
				fmt.Fprintf(tw, "%s\t%s\t@%s\t%s\t%s\n",
					user.UserID, user.Name, user.MentionName, user.Email, user.Status)
			}
			return tw.Flush()
		},
	}
}

func userShowCommand() *cli.Command {
	var session cli.SessionConfig
	var jsonOut cli.JSONOutput

	return &cli.Command{
		Name:    "show",
		Summary: "Show a member's details",
		Usage:   "hipchat user show <user-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			jsonOut.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one user ID argument is required")
			}
			userID, err := ref.ParseUserID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			client, err := session.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			user, err := client.Users.Show(ctx, userID)
			if err != nil {
				return err
			}

			if done, err := jsonOut.EmitJSON(user); done {
				return err
			}

			fmt.Printf("ID:      %s\n", user.UserID)
			fmt.Printf("Name:    %s\n", user.Name)
			fmt.Printf("Mention: @%s\n", user.MentionName)
			fmt.Printf("Email:   %s\n", user.Email)
			if user.Title != "" {
				fmt.Printf("Title:   %s\n", user.Title)
			}
			if user.Status != "" {
				status := user.Status
				if user.StatusMessage != "" {
					status += " (" + user.StatusMessage + ")"
				}
				fmt.Printf("Status:  %s\n", status)
			}
			fmt.Printf("Admin:   %v\n", bool(user.IsGroupAdmin))
			if !user.LastActive.IsZero() {
				fmt.Printf("Active:  %s\n", user.LastActive.Format(time.RFC3339))
			}
			return nil
		},
	}
}
