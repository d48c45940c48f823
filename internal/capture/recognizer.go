package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// FramePlaceholder is replaced by the frame path in OCR command arguments.
const FramePlaceholder = "{frame}"

// Recognizer reads the lap-timer text shown in one frame.
type Recognizer interface {
	Recognize(ctx context.Context, framePath string) (string, error)
}

// CommandRecognizer runs an external OCR program and returns its trimmed
// standard output.
type CommandRecognizer struct {
	Args    []string
	Timeout time.Duration
}

// Recognize implements Recognizer.
func (r CommandRecognizer) Recognize(ctx context.Context, framePath string) (string, error) {
	if len(r.Args) == 0 {
		return "", errors.New("ocr command is not configured")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	args := make([]string, len(r.Args))
	for i, arg := range r.Args {
		args[i] = strings.ReplaceAll(arg, FramePlaceholder, framePath)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("ocr %s: %w: %s", args[0], err, msg)
		}
		return "", fmt.Errorf("ocr %s: %w", args[0], err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
