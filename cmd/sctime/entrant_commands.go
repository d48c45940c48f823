package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sctime/internal/entrant"
	"sctime/internal/laptime"
	"sctime/internal/logging"
)

func newEntrantCommand(ctx *commandContext) *cobra.Command {
	entrantCmd := &cobra.Command{
		Use:     "entrant",
		Aliases: []string{"entrants"},
		Short:   "Manage the entrants of a session",
	}
	entrantCmd.AddCommand(newEntrantAddCommand(ctx))
	entrantCmd.AddCommand(newEntrantRemoveCommand(ctx))
	entrantCmd.AddCommand(newEntrantListCommand(ctx))
	entrantCmd.AddCommand(newEntrantFindCommand(ctx))
	return entrantCmd
}

func newEntrantAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <number>",
		Short: "Add an entrant in the next free column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			number, err := parseIndex(args[1], "number")
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, true, func(s *sessionState) error {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, warning := range entrantWarnings(name, number) {
					fmt.Fprintln(out, renderStatusLine("Check", statusWarn, warning, colorize))
				}
				added := s.entrants.Add(name, number)
				s.logger.Info("entrant added",
					logging.Int(logging.FieldEntrantID, added.ID()),
					logging.String("name", added.Name()),
				)
				fmt.Fprintf(out, "Added %s (#%d) as entrant %d\n", added.Name(), added.Number(), added.ID())
				return nil
			})
		},
	}
}

func newEntrantRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an entrant; later entrants move one column left",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIndex(args[0], "entrant id")
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, true, func(s *sessionState) error {
				removed, err := s.entrants.ByID(id)
				if err != nil {
					return err
				}
				if err := s.entrants.Remove(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (#%d)\n", removed.Name(), removed.Number())
				return nil
			})
		},
	}
}

type entrantJSON struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Number     int       `json:"number"`
	Laps       []float64 `json:"laps"`
	FirstLapAt string    `json:"first_lap_at,omitempty"`
}

func toEntrantJSON(e *entrant.Entrant) entrantJSON {
	out := entrantJSON{ID: e.ID(), Name: e.Name(), Number: e.Number(), Laps: e.Laps()}
	if out.Laps == nil {
		out.Laps = []float64{}
	}
	if t := e.FirstLapAt(); !t.IsZero() {
		out.FirstLapAt = t.Format(timeLayout)
	}
	return out
}

func entrantRows(entrants []*entrant.Entrant) [][]string {
	rows := make([][]string, 0, len(entrants))
	for _, e := range entrants {
		last, ok := e.Lap(e.HighestLapIndex())
		rows = append(rows, []string{
			strconv.Itoa(e.ID()),
			e.Name(),
			strconv.Itoa(e.Number()),
			strconv.Itoa(e.LapCount()),
			formatLap(last, ok),
			formatSince(e.FirstLapAt()),
		})
	}
	return rows
}

var entrantHeaders = []string{"ID", "Name", "No.", "Laps", "Last", "First lap"}

func newEntrantListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entrants in column order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(s *sessionState) error {
				snapshot := s.entrants.Snapshot()
				if asJSON {
					out := make([]entrantJSON, 0, len(snapshot))
					for _, e := range snapshot {
						out = append(out, toEntrantJSON(e))
					}
					return writeJSON(cmd, out)
				}
				if len(snapshot) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Session %s has no entrants\n", s.session.Name)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(s.session.Name, entrantHeaders, entrantRows(snapshot),
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight}))
				return nil
			})
		},
	}
	addJSONFlag(cmd, &asJSON)
	return cmd
}

func newEntrantFindCommand(ctx *commandContext) *cobra.Command {
	var (
		number int
		name   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the first entrant with a number or name",
		RunE: func(cmd *cobra.Command, args []string) error {
			byNumber := cmd.Flags().Changed("number")
			if byNumber == (name != "") {
				return errors.New("specify exactly one of --number or --name")
			}
			return ctx.withSession(cmd, false, func(s *sessionState) error {
				var (
					found *entrant.Entrant
					err   error
				)
				if byNumber {
					found, err = s.entrants.ByNumber(number)
				} else {
					found, err = s.entrants.ByName(name)
				}
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, toEntrantJSON(found))
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable("", entrantHeaders, entrantRows([]*entrant.Entrant{found}), nil))
				if laps := found.Laps(); len(laps) > 0 {
					formatted := make([]string, len(laps))
					for i, d := range laps {
						formatted[i] = laptime.Format(d)
					}
					fmt.Fprintf(out, "Laps: %s\n", strings.Join(formatted, ", "))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&number, "number", 0, "Vehicle number to look up")
	cmd.Flags().StringVar(&name, "name", "", "Exact entrant name to look up")
	addJSONFlag(cmd, &asJSON)
	return cmd
}
