package capture

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const framePattern = "frame_%05d.png"

// FrameOptions controls frame sampling.
type FrameOptions struct {
	// Interval between sampled frames. Defaults to one second.
	Interval time.Duration
	// MaxDuration caps how much of the source is read. Zero reads it all.
	MaxDuration time.Duration
	// FFmpegPath overrides the ffmpeg binary looked up on PATH.
	FFmpegPath string
}

// ExtractFrames writes sampled frames of source into dir and returns their
// paths in capture order.
func ExtractFrames(ctx context.Context, source, dir string, opts FrameOptions) ([]string, error) {
	if _, err := os.Stat(source); err != nil {
		return nil, fmt.Errorf("video source %s: %w", source, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory: %w", err)
	}

	binary := opts.FFmpegPath
	if binary == "" {
		binary = "ffmpeg"
	}
	cmd := exec.CommandContext(ctx, binary, frameArgs(source, filepath.Join(dir, framePattern), opts)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("ffmpeg frame extraction failed: %w: %s", err, lastLine(output))
	}

	frames, err := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}
	sort.Strings(frames)
	return frames, nil
}

func frameArgs(source, pattern string, opts FrameOptions) []string {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second
	}
	kwargs := ffmpeg.KwArgs{
		"vf": "fps=1/" + strconv.FormatFloat(interval.Seconds(), 'f', -1, 64),
	}
	if opts.MaxDuration > 0 {
		kwargs["t"] = strconv.FormatFloat(opts.MaxDuration.Seconds(), 'f', -1, 64)
	}
	return ffmpeg.Input(source).
		Output(pattern, kwargs).
		OverWriteOutput().
		GetArgs()
}

func lastLine(output []byte) string {
	end := len(output)
	for end > 0 && (output[end-1] == '\n' || output[end-1] == '\r') {
		end--
	}
	start := end
	for start > 0 && output[start-1] != '\n' {
		start--
	}
	return string(output[start:end])
}
