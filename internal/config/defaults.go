package config

const (
	defaultDataDir         = "~/.local/share/sctime"
	defaultLogDir          = "~/.local/share/sctime/logs"
	defaultFrameDir        = "~/.cache/sctime/frames"
	defaultSessionName     = "default"
	defaultGridMinColumns  = 11
	defaultGridMinRows     = 19
	defaultCaptureInterval = 1.0
	defaultCaptureMax      = 60.0
	defaultOCRTimeout      = 10
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Grid: Grid{
			MinColumns: defaultGridMinColumns,
			MinRows:    defaultGridMinRows,
		},
		Session: Session{
			Default: defaultSessionName,
		},
		Capture: Capture{
			IntervalSeconds: defaultCaptureInterval,
			MaxSeconds:      defaultCaptureMax,
			FrameDir:        defaultFrameDir,
			OCRCommand:      []string{"tesseract", "{frame}", "stdout", "--psm", "7"},
			OCRTimeout:      defaultOCRTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
