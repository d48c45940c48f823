package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sctime/internal/config"
	"sctime/internal/fileutil"
	"sctime/internal/transfer"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the session's entrants and laps as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(s *sessionState) error {
				target := strings.TrimSpace(outputPath)
				if target == "" || target == "-" {
					return transfer.Export(cmd.OutOrStdout(), s.entrants.Snapshot())
				}
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				snapshot := s.entrants.Snapshot()
				if err := fileutil.WriteAtomic(expanded, 0o644, func(w io.Writer) error {
					return transfer.Export(w, snapshot)
				}); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entrants to %s\n", s.entrants.Count(), expanded)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (default stdout)")
	return cmd
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Append entrants from a CSV file to the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve import path: %w", err)
			}
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer file.Close()

			return ctx.withSession(cmd, true, func(s *sessionState) error {
				added, err := transfer.ImportInto(s.entrants, file)
				if err != nil {
					return fmt.Errorf("import %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entrants into %s\n", added, s.session.Name)
				return nil
			})
		},
	}
}
