package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLapCommand(ctx *commandContext) *cobra.Command {
	lapCmd := &cobra.Command{
		Use:     "lap",
		Aliases: []string{"laps"},
		Short:   "Record and correct lap times",
		Long: `Record and correct lap times.

Lap numbers start at 1. Times accept clock forms (1:23.4, 1:02:03) and
digit shorthand: 45 is 45 seconds, 134 is 1:34 and 12345 is 1:23:45.`,
	}
	lapCmd.AddCommand(newLapAddCommand(ctx))
	lapCmd.AddCommand(newLapSetCommand(ctx))
	lapCmd.AddCommand(newLapRemoveCommand(ctx))
	return lapCmd
}

func newLapAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <entrant-id> <time>...",
		Short: "Append one or more laps to an entrant",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseIndex(args[0], "entrant id")
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, true, func(s *sessionState) error {
				for _, text := range args[1:] {
					row, err := s.grid.NextRow(col)
					if err != nil {
						return err
					}
					if err := s.grid.SetCell(row, col, text); err != nil {
						return err
					}
					printCell(cmd, s, row, col)
				}
				return nil
			})
		},
	}
}

func newLapSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <entrant-id> <lap> <time>",
		Short: "Replace a lap, or record the next one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseIndex(args[0], "entrant id")
			if err != nil {
				return err
			}
			lap, err := parseIndex(args[1], "lap number")
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, true, func(s *sessionState) error {
				if err := s.grid.SetCell(lap-1, col, args[2]); err != nil {
					return err
				}
				printCell(cmd, s, lap-1, col)
				return nil
			})
		},
	}
}

func newLapRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <entrant-id> <lap>",
		Short: "Delete a lap; later laps move up",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseIndex(args[0], "entrant id")
			if err != nil {
				return err
			}
			lap, err := parseIndex(args[1], "lap number")
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, true, func(s *sessionState) error {
				if err := s.grid.ClearCell(lap-1, col); err != nil {
					return err
				}
				name, _ := s.grid.ColumnHeader(col)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed lap %d of %s\n", lap, name)
				return nil
			})
		},
	}
}

func printCell(cmd *cobra.Command, s *sessionState, row, col int) {
	name, _ := s.grid.ColumnHeader(col)
	text, _ := s.grid.Cell(row, col)
	fmt.Fprintf(cmd.OutOrStdout(), "%s lap %d: %s\n", name, row+1, text)
}
