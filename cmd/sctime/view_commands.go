package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sctime/internal/laptime"
	"sctime/internal/leaderboard"
)

func newGridCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Show the lap grid (one column per entrant)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(s *sessionState) error {
				headers, rows := s.grid.Rows()
				if s.entrants.Count() == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Session %s has no entrants\n", s.session.Name)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(s.session.Name, headers, rows,
					repeatAlign(len(headers)-1, alignRight, alignRight)))
				return nil
			})
		},
	}
}

type standingJSON struct {
	Position   int     `json:"position"`
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	Number     int     `json:"number"`
	Laps       int     `json:"laps"`
	Total      float64 `json:"total_seconds"`
	Best       float64 `json:"best_seconds"`
	Last       float64 `json:"last_seconds"`
	GapLaps    int     `json:"gap_laps"`
	GapSeconds float64 `json:"gap_seconds"`
}

func newLeaderboardCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"standings"},
		Short:   "Rank entrants by laps completed and total time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(s *sessionState) error {
				standings := leaderboard.Standings(s.entrants.Snapshot())
				if asJSON {
					out := make([]standingJSON, 0, len(standings))
					for _, st := range standings {
						out = append(out, standingJSON(st))
					}
					return writeJSON(cmd, out)
				}
				rows := make([][]string, 0, len(standings))
				for _, st := range standings {
					rows = append(rows, []string{
						strconv.Itoa(st.Position),
						st.Code,
						st.Name,
						strconv.Itoa(st.Number),
						strconv.Itoa(st.Laps),
						formatLap(st.Total, st.Laps > 0),
						formatLap(st.Best, st.Laps > 0),
						formatLap(st.Last, st.Laps > 0),
						formatGap(st),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(s.session.Name,
					[]string{"Pos", "Code", "Name", "No.", "Laps", "Total", "Best", "Last", "Gap"}, rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}))
				return nil
			})
		},
	}
	addJSONFlag(cmd, &asJSON)
	return cmd
}

func newProgressCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show elapsed race time after each lap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(s *sessionState) error {
				series := leaderboard.Progress(s.entrants.Snapshot())
				if asJSON {
					return writeJSON(cmd, series)
				}
				headers := []string{"Lap"}
				longest := 0
				for _, line := range series {
					headers = append(headers, line.Name)
					longest = max(longest, len(line.Elapsed))
				}
				rows := make([][]string, 0, longest)
				for lap := 0; lap < longest; lap++ {
					row := []string{strconv.Itoa(lap + 1)}
					for _, line := range series {
						cell := ""
						if lap < len(line.Elapsed) {
							cell = laptime.Format(line.Elapsed[lap])
						}
						row = append(row, cell)
					}
					rows = append(rows, row)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(s.session.Name, headers, rows,
					repeatAlign(len(series), alignRight, alignRight)))
				return nil
			})
		},
	}
	addJSONFlag(cmd, &asJSON)
	return cmd
}
