package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"sctime/internal/grid"
	"sctime/internal/logging"
)

// Result counts what happened to the frames passed to Feed.
type Result struct {
	Appended   int
	Skipped    int
	Duplicates int
}

// Feeder writes recognised lap times into one grid column.
type Feeder struct {
	grid       *grid.Adapter
	recognizer Recognizer
	logger     *slog.Logger
}

// NewFeeder builds a Feeder writing through g.
func NewFeeder(g *grid.Adapter, recognizer Recognizer, logger *slog.Logger) *Feeder {
	return &Feeder{
		grid:       g,
		recognizer: recognizer,
		logger:     logging.NewComponentLogger(logger, "capture"),
	}
}

// Feed recognises each frame in order and appends the readings to column col.
// A reading equal to the previous one is the timer still showing the same lap
// and is not appended again. Frames that cannot be read or parsed are skipped.
func (f *Feeder) Feed(ctx context.Context, col int, frames []string) (Result, error) {
	var (
		result   Result
		previous string
	)
	for _, frame := range frames {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		name := filepath.Base(frame)

		text, err := f.recognizer.Recognize(ctx, frame)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Skipped++
			logging.WarnWithContext(f.logger, "frame not recognised", "capture_ocr_failed",
				logging.String("frame", name),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check capture.ocr_command"),
			)
			continue
		}
		if text == previous {
			result.Duplicates++
			continue
		}

		row, err := f.grid.NextRow(col)
		if err != nil {
			return result, fmt.Errorf("capture into column %d: %w", col, err)
		}
		if err := f.grid.SetCell(row, col, text); err != nil {
			if errors.Is(err, grid.ErrInvalidTime) {
				result.Skipped++
				logging.WarnWithContext(f.logger, "frame text is not a lap time", "capture_unparsable",
					logging.String("frame", name),
					logging.String("text", text),
				)
				continue
			}
			return result, err
		}
		previous = text
		result.Appended++
		f.logger.Debug("lap captured",
			append(logging.Cell(row, col), logging.String("frame", name), logging.String("text", text))...,
		)
	}
	f.logger.Info("capture finished",
		logging.Int(logging.FieldEntrantID, col),
		logging.Int("appended", result.Appended),
		logging.Int("skipped", result.Skipped),
		logging.Int("duplicates", result.Duplicates),
	)
	return result, nil
}
