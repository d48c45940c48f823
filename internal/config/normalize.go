package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSession()
	if err := c.normalizeCapture(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("SCTIME_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSession() {
	c.Session.Default = strings.TrimSpace(c.Session.Default)
	if c.Session.Default == "" {
		c.Session.Default = defaultSessionName
	}
}

func (c *Config) normalizeCapture() error {
	if strings.TrimSpace(c.Capture.FrameDir) == "" {
		c.Capture.FrameDir = defaultFrameDir
	}
	var err error
	if c.Capture.FrameDir, err = expandPath(c.Capture.FrameDir); err != nil {
		return fmt.Errorf("capture.frame_dir: %w", err)
	}
	args := make([]string, 0, len(c.Capture.OCRCommand))
	for _, arg := range c.Capture.OCRCommand {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			args = append(args, trimmed)
		}
	}
	c.Capture.OCRCommand = args
	if c.Capture.OCRTimeout <= 0 {
		c.Capture.OCRTimeout = defaultOCRTimeout
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
