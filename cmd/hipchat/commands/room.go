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
	"github.com/dobarkod/hipchat-api/hipchat"
	"github.com/dobarkod/hipchat-api/lib/ref"
)

// commandTimeout bounds every API call issued by a command.
const commandTimeout = 30 * time.Second

// RoomCommand returns the "room" subcommand group.
func RoomCommand() *cli.Command {
	return &cli.Command{
		Name:    "room",
		Summary: "Manage rooms",
		Description: `List, inspect, create, and delete rooms; set topics, send
messages, and fetch history.`,
		Subcommands: []*cli.Command{
			roomListCommand(),
			roomShowCommand(),
			roomCreateCommand(),
			roomDeleteCommand(),
			roomTopicCommand(),
			roomMessageCommand(),
			roomHistoryCommand(),
		},
	}
}

func roomListCommand() *cli.Command {
	var session cli.SessionConfig
	var jsonOut cli.JSONOutput

	return &cli.Command{
		Name:    "list",
		Summary: "List rooms the token has access to",
		Usage:   "hipchat room list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			jsonOut.AddFlags(flagSet)
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

			rooms, err := client.Rooms.List(ctx)
			if err != nil {
				return err
			}

			if done, err := jsonOut.EmitJSON(rooms); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRIVATE\tTOPIC")
			for _, room := range rooms {
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n",
					room.RoomID, room.Name, bool(room.IsPrivate), room.Topic)
			}
			return tw.Flush()
		},
	}
}

func roomShowCommand() *cli.Command {
	var session cli.SessionConfig
	var jsonOut cli.JSONOutput

	return &cli.Command{
		Name:    "show",
		Summary: "Show a room's details and participants",
		Usage:   "hipchat room show <room-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			jsonOut.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			roomID, err := singleRoomID(args)
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

			room, err := client.Rooms.Show(ctx, roomID)
			if err != nil {
				return err
			}

			if done, err := jsonOut.EmitJSON(room); done {
				return err
			}

			fmt.Printf("ID:      %s\n", room.RoomID)
			fmt.Printf("Name:    %s\n", room.Name)
			fmt.Printf("Topic:   %s\n", room.Topic)
			fmt.Printf("Owner:   %s\n", room.OwnerUserID)
			fmt.Printf("Private: %v\n", bool(room.IsPrivate))
			if !room.LastActive.IsZero() {
				fmt.Printf("Active:  %s\n", room.LastActive.Format(time.RFC3339))
			}
			if len(room.Participants) > 0 {
				fmt.Println("Participants:")
				for _, participant := range room.Participants {
					fmt.Printf("  %s (%s)\n", participant.Name, participant.UserID)
				}
			}
			return nil
		},
	}
}

func roomCreateCommand() *cli.Command {
	var session cli.SessionConfig
	var jsonOut cli.JSONOutput
	var owner string
	var topic string
	var public bool
	var guestAccess bool

	return &cli.Command{
		Name:    "create",
		Summary: "Create a room",
		Usage:   "hipchat room create <name> --owner <user-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Create a private room owned by user 7",
				Command:     "hipchat room create 'War Room' --owner 7 --topic 'Incident response'",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			jsonOut.AddFlags(flagSet)
			flagSet.StringVar(&owner, "owner", "", "owner user ID (required)")
			flagSet.StringVar(&topic, "topic", "", "initial room topic")
			flagSet.BoolVar(&public, "public", false, "open the room to anyone in the group")
			flagSet.BoolVar(&guestAccess, "guest-access", false, "enable the guest access URL")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("room name is required\n\nUsage: hipchat room create <name> --owner <user-id> [flags]")
			}
			if owner == "" {
				return fmt.Errorf("--owner is required")
			}
			ownerID, err := ref.ParseUserID(owner)
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

			room, err := client.Rooms.Create(ctx, hipchat.CreateRoomRequest{
				Name:        args[0],
				OwnerUserID: ownerID,
				Topic:       topic,
				Public:      public,
				GuestAccess: guestAccess,
			})
			if err != nil {
				return err
			}

			if done, err := jsonOut.EmitJSON(room); done {
				return err
			}
			fmt.Printf("created room %s (%s)\n", room.RoomID, room.Name)
			return nil
		},
	}
}

func roomDeleteCommand() *cli.Command {
	var session cli.SessionConfig

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a room",
		Description: `Delete a room. There is no way to restore a deleted room or its
history.`,
		Usage: "hipchat room delete <room-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			roomID, err := singleRoomID(args)
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

			return client.Rooms.Delete(ctx, roomID)
		},
	}
}

func roomTopicCommand() *cli.Command {
	var session cli.SessionConfig

	return &cli.Command{
		Name:    "topic",
		Summary: "Set a room's topic",
		Usage:   "hipchat room topic <room-id> <topic> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("topic", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("room ID and topic are required\n\nUsage: hipchat room topic <room-id> <topic>")
			}
			roomID, err := ref.ParseRoomID(args[0])
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

			return client.Rooms.SetTopic(ctx, roomID, args[1])
		},
	}
}

func roomMessageCommand() *cli.Command {
	var session cli.SessionConfig
	var color string
	var notify bool
	var html bool

	return &cli.Command{
		Name:    "message",
		Summary: "Send a message to a room",
		Usage:   "hipchat room message <room-id> <message> [flags]",
		Examples: []cli.Example{
			{
				Description: "Notify a room in red",
				Command:     "hipchat room message 42 'deploy failed' --color red --notify",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("message", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			flagSet.StringVar(&color, "color", hipchat.ColorYellow, "message color (yellow, red, green, purple, gray, random)")
			flagSet.BoolVar(&notify, "notify", false, "trigger participant notifications")
			flagSet.BoolVar(&html, "html", false, "send the body as HTML instead of text")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("room ID and message are required\n\nUsage: hipchat room message <room-id> <message>")
			}
			roomID, err := ref.ParseRoomID(args[0])
			if err != nil {
				return err
			}

			message := hipchat.NewTextMessage(args[1])
			if html {
				message = hipchat.NewHTMLMessage(args[1])
			}
			message.Color = color
			message.Notify = notify

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			client, err := session.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			return client.Rooms.SendMessage(ctx, roomID, message)
		},
	}
}

func roomHistoryCommand() *cli.Command {
	var session cli.SessionConfig
	var jsonOut cli.JSONOutput
	var date string
	var timezone string

	return &cli.Command{
		Name:    "history",
		Summary: "Fetch a room's message history",
		Description: `Fetch the most recent messages from a room, or a full day with
--date.`,
		Usage: "hipchat room history <room-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("history", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			jsonOut.AddFlags(flagSet)
			flagSet.StringVar(&date, "date", "", "day to fetch as YYYY-MM-DD (default: most recent messages)")
			flagSet.StringVar(&timezone, "timezone", "UTC", "tz database name for day boundaries")
			return flagSet
		},
		Run: func(args []string) error {
			roomID, err := singleRoomID(args)
			if err != nil {
				return err
			}

			options := hipchat.HistoryOptions{Timezone: timezone}
			if date != "" {
				day, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
				}
				options.Date = day
			}

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			client, err := session.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			messages, err := client.Rooms.History(ctx, roomID, options)
			if err != nil {
				return err
			}

			if done, err := jsonOut.EmitJSON(messages); done {
				return err
			}

			for _, message := range messages {
				fmt.Printf("[%s] %s: %s\n",
					message.Date.Format("15:04"), message.From.Name, message.Text)
			}
			return nil
		},
	}
}

// singleRoomID parses the single positional room ID argument.
func singleRoomID(args []string) (ref.RoomID, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("exactly one room ID argument is required")
	}
	return ref.ParseRoomID(args[0])
}
