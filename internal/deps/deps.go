// Package deps checks that the external programs sctime shells out to are
// installed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"sctime/internal/config"
)

// Requirement defines an external program a feature relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Command = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}

// CaptureRequirements lists the programs `sctime capture` runs: ffmpeg for
// frame extraction and the first word of the configured OCR command.
func CaptureRequirements(cfg *config.Config) []Requirement {
	ocr := ""
	if cfg != nil && len(cfg.Capture.OCRCommand) > 0 {
		ocr = cfg.Capture.OCRCommand[0]
	}
	return []Requirement{
		{Name: "FFmpeg", Command: "ffmpeg", Description: "Extracts still frames from timer footage"},
		{Name: "OCR", Command: ocr, Description: "Reads lap times from frames"},
	}
}

// Missing returns the required statuses that are unavailable.
func Missing(statuses []Status) []Status {
	var missing []Status
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			missing = append(missing, s)
		}
	}
	return missing
}

// MissingError summarises unavailable requirements, or returns nil.
func MissingError(statuses []Status) error {
	missing := Missing(statuses)
	if len(missing) == 0 {
		return nil
	}
	parts := make([]string, 0, len(missing))
	for _, s := range missing {
		parts = append(parts, fmt.Sprintf("%s (%s)", s.Name, s.Detail))
	}
	return fmt.Errorf("missing required programs: %s", strings.Join(parts, ", "))
}
