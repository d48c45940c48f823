package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGrid(); err != nil {
		return err
	}
	if err := c.validateCapture(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGrid() error {
	return ensurePositiveMap(map[string]int{
		"grid.min_columns": c.Grid.MinColumns,
		"grid.min_rows":    c.Grid.MinRows,
	})
}

func (c *Config) validateCapture() error {
	if c.Capture.IntervalSeconds <= 0 {
		return errors.New("capture.interval_seconds must be positive")
	}
	if c.Capture.MaxSeconds <= 0 {
		return errors.New("capture.max_seconds must be positive")
	}
	if c.Capture.MaxSeconds < c.Capture.IntervalSeconds {
		return errors.New("capture.max_seconds must be at least capture.interval_seconds")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
