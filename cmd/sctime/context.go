package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"sctime/internal/config"
	"sctime/internal/entrant"
	"sctime/internal/grid"
	"sctime/internal/logging"
	"sctime/internal/store"
)

const lockTimeout = 5 * time.Second

type commandContext struct {
	configFlag  *string
	sessionFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, sessionFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		sessionFlag: sessionFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) sessionName() string {
	if c.sessionFlag != nil {
		if name := strings.TrimSpace(*c.sessionFlag); name != "" {
			return name
		}
	}
	if cfg := c.configValue(); cfg != nil && cfg.Session.Default != "" {
		return cfg.Session.Default
	}
	return "default"
}

// sessionState is a loaded session. Changes made through entrants or grid are
// saved when the surrounding withSession call returns without error.
type sessionState struct {
	cfg      *config.Config
	store    *store.Store
	session  *store.Session
	entrants *entrant.Collection
	grid     *grid.Adapter
	logger   *slog.Logger
}

// withSession loads the selected session, runs fn and, when mutate is set,
// saves the collection back under the data directory lock.
func (c *commandContext) withSession(cmd *cobra.Command, mutate bool, fn func(*sessionState) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewComponentLogger(c.ensureLogger(), "cli")
	name := c.sessionName()

	if mutate {
		lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
		lock, err := store.AcquireLock(lockCtx, cfg)
		cancel()
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("failed to release session lock", logging.Error(err))
			}
		}()
	}

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer st.Close()

	var session *store.Session
	if mutate {
		var created bool
		session, created, err = st.Ensure(ctx, name)
		if err == nil && created {
			logger.Info("session created", logging.String(logging.FieldSession, name))
		}
	} else {
		session, err = st.Get(ctx, name)
		if errors.Is(err, store.ErrSessionNotFound) {
			session = &store.Session{Name: name}
			err = nil
		}
	}
	if err != nil {
		return err
	}

	collection := entrant.NewCollection(logger)
	if session.ID != "" {
		if err := st.LoadInto(ctx, session.ID, collection); err != nil {
			return fmt.Errorf("load session %s: %w", name, err)
		}
	}
	adapter := grid.New(collection, grid.Options{
		MinColumns: cfg.Grid.MinColumns,
		MinRows:    cfg.Grid.MinRows,
	}, logger)
	defer adapter.Close()

	state := &sessionState{
		cfg:      cfg,
		store:    st,
		session:  session,
		entrants: collection,
		grid:     adapter,
		logger:   logger.With(logging.String(logging.FieldSession, name)),
	}
	if err := fn(state); err != nil {
		return err
	}
	if !mutate {
		return nil
	}
	if err := st.Save(ctx, session.ID, collection.Snapshot()); err != nil {
		return fmt.Errorf("save session %s: %w", name, err)
	}
	state.logger.Debug("session saved", logging.Int("entrants", collection.Count()))
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
