package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sctime/internal/store"
)

func newSessionCommand(ctx *commandContext) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage timing sessions",
	}
	sessionCmd.AddCommand(newSessionNewCommand(ctx))
	sessionCmd.AddCommand(newSessionListCommand(ctx))
	sessionCmd.AddCommand(newSessionDeleteCommand(ctx))
	return sessionCmd
}

// withStore opens the session store, holding the data directory lock for
// mutating callers.
func (c *commandContext) withStore(cmd *cobra.Command, mutate bool, fn func(context.Context, *store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if mutate {
		lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
		lock, err := store.AcquireLock(lockCtx, cfg)
		cancel()
		if err != nil {
			return err
		}
		defer lock.Release()
	}
	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer st.Close()
	return fn(ctx, st)
}

func newSessionNewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create an empty session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, true, func(c context.Context, st *store.Store) error {
				session, err := st.Create(c, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created session %s (%s)\n", session.Name, session.ID)
				return nil
			})
		},
	}
}

type sessionJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Entrants  int    `json:"entrants"`
}

func newSessionListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, false, func(c context.Context, st *store.Store) error {
				sessions, err := st.List(c)
				if err != nil {
					return err
				}
				if asJSON {
					out := make([]sessionJSON, 0, len(sessions))
					for _, s := range sessions {
						out = append(out, sessionJSON{
							ID:        s.ID,
							Name:      s.Name,
							CreatedAt: s.CreatedAt.Format(timeLayout),
							UpdatedAt: s.UpdatedAt.Format(timeLayout),
							Entrants:  s.Entrants,
						})
					}
					return writeJSON(cmd, out)
				}
				if len(sessions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No sessions stored")
					return nil
				}
				rows := make([][]string, 0, len(sessions))
				for _, s := range sessions {
					marker := ""
					if s.Name == ctx.sessionName() {
						marker = "*"
					}
					rows = append(rows, []string{marker, s.Name, strconv.Itoa(s.Entrants), formatSince(s.UpdatedAt), s.ID})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable("", []string{"", "Name", "Entrants", "Updated", "ID"}, rows,
					[]columnAlignment{alignCenter, alignLeft, alignRight}))
				return nil
			})
		},
	}
	addJSONFlag(cmd, &asJSON)
	return cmd
}

func newSessionDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a session and all of its laps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, true, func(c context.Context, st *store.Store) error {
				session, err := st.Get(c, args[0])
				if err != nil {
					return err
				}
				if err := st.Delete(c, session.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", session.Name)
				return nil
			})
		},
	}
}
