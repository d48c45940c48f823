package capture_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"sctime/internal/capture"
	"sctime/internal/entrant"
	"sctime/internal/grid"
)

type fakeRecognizer map[string]string

func (f fakeRecognizer) Recognize(_ context.Context, frame string) (string, error) {
	text, ok := f[frame]
	if !ok {
		return "", errors.New("unreadable frame")
	}
	return text, nil
}

func TestFeederAppendsParsableReadings(t *testing.T) {
	c := entrant.NewCollection(nil)
	c.Add("Red Team", 7)
	_ = c.AppendLap(0, 80)
	g := grid.New(c, grid.Options{}, nil)
	defer g.Close()

	recognizer := fakeRecognizer{
		"f1": "1:23.4",
		"f2": "1:23.4",
		"f3": "garbage",
		"f5": "90",
	}
	feeder := capture.NewFeeder(g, recognizer, nil)

	result, err := feeder.Feed(context.Background(), 0, []string{"f1", "f2", "f3", "f4", "f5"})
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if result != (capture.Result{Appended: 2, Skipped: 2, Duplicates: 1}) {
		t.Fatalf("unexpected result %+v", result)
	}
	e, _ := c.ByID(0)
	if got := e.Laps(); !slices.Equal(got, []float64{80, 83.4, 90}) {
		t.Fatalf("unexpected laps %v", got)
	}
}

func TestFeederRejectsMissingColumn(t *testing.T) {
	c := entrant.NewCollection(nil)
	g := grid.New(c, grid.Options{}, nil)
	defer g.Close()

	feeder := capture.NewFeeder(g, fakeRecognizer{"f1": "60"}, nil)
	if _, err := feeder.Feed(context.Background(), 0, []string{"f1"}); !errors.Is(err, grid.ErrNoEntrant) {
		t.Fatalf("expected ErrNoEntrant, got %v", err)
	}
}

func TestFeederStopsOnCancel(t *testing.T) {
	c := entrant.NewCollection(nil)
	c.Add("A", 1)
	g := grid.New(c, grid.Options{}, nil)
	defer g.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	feeder := capture.NewFeeder(g, fakeRecognizer{"f1": "60"}, nil)
	if _, err := feeder.Feed(ctx, 0, []string{"f1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if count, _ := c.LapCount(0); count != 0 {
		t.Fatalf("expected no laps after cancel, got %d", count)
	}
}

func TestCommandRecognizerSubstitutesFrame(t *testing.T) {
	frame := filepath.Join(t.TempDir(), "frame_00001.txt")
	if err := os.WriteFile(frame, []byte("  1:02.5\n"), 0o644); err != nil {
		t.Fatalf("write frame: %v", err)
	}
	r := capture.CommandRecognizer{Args: []string{"cat", capture.FramePlaceholder}, Timeout: 5 * time.Second}

	text, err := r.Recognize(context.Background(), frame)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if text != "1:02.5" {
		t.Fatalf("Recognize = %q", text)
	}
}

func TestCommandRecognizerReportsFailure(t *testing.T) {
	r := capture.CommandRecognizer{Args: []string{"sh", "-c", "echo broken >&2; exit 3"}}
	_, err := r.Recognize(context.Background(), "frame.png")
	if err == nil || !strings.Contains(err.Error(), "broken") {
		t.Fatalf("expected stderr in error, got %v", err)
	}

	if _, err := (capture.CommandRecognizer{}).Recognize(context.Background(), "frame.png"); err == nil {
		t.Fatal("expected error for empty command")
	}
}
