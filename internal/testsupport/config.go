package testsupport

import (
	"path/filepath"
	"testing"

	"sctime/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Capture.FrameDir = filepath.Join(base, "frames")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithGridFloor overrides the minimum grid dimensions.
func WithGridFloor(columns, rows int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Grid.MinColumns = columns
		b.cfg.Grid.MinRows = rows
	}
}

// WithSession sets the default session name.
func WithSession(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Session.Default = name
	}
}

// WithOCRCommand replaces the OCR command template.
func WithOCRCommand(args ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Capture.OCRCommand = args
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
