package entrant_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	"sctime/internal/entrant"
)

func TestAppendLapStampsFirstLapOnce(t *testing.T) {
	e := entrant.New(0, "Red Team", 7)
	if !e.FirstLapAt().IsZero() {
		t.Fatal("expected no first-lap time before any lap")
	}
	if e.HighestLapIndex() != -1 {
		t.Fatalf("expected highest lap index -1, got %d", e.HighestLapIndex())
	}

	if err := e.AppendLap(83.4); err != nil {
		t.Fatalf("AppendLap: %v", err)
	}
	first := e.FirstLapAt()
	if first.IsZero() {
		t.Fatal("expected first-lap time after first lap")
	}
	if err := e.AppendLap(90); err != nil {
		t.Fatalf("AppendLap: %v", err)
	}
	if !e.FirstLapAt().Equal(first) {
		t.Fatal("first-lap time changed on second lap")
	}
	if got := e.Laps(); !slices.Equal(got, []float64{83.4, 90}) {
		t.Fatalf("unexpected laps %v", got)
	}
	if e.LapCount() != 2 || e.HighestLapIndex() != 1 {
		t.Fatalf("unexpected counts: laps=%d highest=%d", e.LapCount(), e.HighestLapIndex())
	}
}

func TestEditAndRemoveLapPreserveOrder(t *testing.T) {
	e := entrant.New(0, "Blue", 3)
	for _, d := range []float64{60, 61, 62, 63} {
		if err := e.AppendLap(d); err != nil {
			t.Fatalf("AppendLap: %v", err)
		}
	}
	if err := e.EditLap(1, 70); err != nil {
		t.Fatalf("EditLap: %v", err)
	}
	if err := e.RemoveLap(0); err != nil {
		t.Fatalf("RemoveLap: %v", err)
	}
	if got := e.Laps(); !slices.Equal(got, []float64{70, 62, 63}) {
		t.Fatalf("unexpected laps %v", got)
	}
}

func TestLapIndexOutOfRangeLeavesLapsUntouched(t *testing.T) {
	e := entrant.New(0, "Blue", 3)
	_ = e.AppendLap(60)

	for _, index := range []int{-1, 1, 5} {
		if err := e.EditLap(index, 10); !errors.Is(err, entrant.ErrLapIndex) {
			t.Fatalf("EditLap(%d): expected ErrLapIndex, got %v", index, err)
		}
		if err := e.RemoveLap(index); !errors.Is(err, entrant.ErrLapIndex) {
			t.Fatalf("RemoveLap(%d): expected ErrLapIndex, got %v", index, err)
		}
	}
	if got := e.Laps(); !slices.Equal(got, []float64{60}) {
		t.Fatalf("unexpected laps %v", got)
	}
}

func TestNegativeDurationsRejected(t *testing.T) {
	e := entrant.New(0, "Blue", 3)
	if err := e.AppendLap(-1); !errors.Is(err, entrant.ErrNegativeDuration) {
		t.Fatalf("expected ErrNegativeDuration, got %v", err)
	}
	if e.LapCount() != 0 || !e.FirstLapAt().IsZero() {
		t.Fatal("rejected lap mutated the entrant")
	}
	if _, err := entrant.Restore("x", 1, []float64{1, -2}, time.Time{}); !errors.Is(err, entrant.ErrNegativeDuration) {
		t.Fatalf("expected Restore to reject negative lap, got %v", err)
	}
}

func TestLapsReturnsCopy(t *testing.T) {
	e := entrant.New(0, "Blue", 3)
	_ = e.AppendLap(60)
	laps := e.Laps()
	laps[0] = 1
	if got, _ := e.Lap(0); got != 60 {
		t.Fatalf("mutating Laps() result changed entrant: %v", got)
	}
	clone := e.Clone()
	_ = clone.AppendLap(61)
	if e.LapCount() != 1 {
		t.Fatal("mutating clone changed original")
	}
}

func TestRestoreKeepsFirstLapTime(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e, err := entrant.Restore("Green", 12, []float64{70.5, 71}, at)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !e.FirstLapAt().Equal(at) {
		t.Fatalf("unexpected first-lap time %v", e.FirstLapAt())
	}
	if e.Name() != "Green" || e.Number() != 12 || e.LapCount() != 2 {
		t.Fatalf("unexpected restored entrant %q #%d laps=%d", e.Name(), e.Number(), e.LapCount())
	}
}

func TestRestoreKeepsZeroFirstLapTime(t *testing.T) {
	e, err := entrant.Restore("Imported", 3, []float64{61, 62}, time.Time{})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !e.FirstLapAt().IsZero() {
		t.Fatalf("expected zero first-lap time, got %v", e.FirstLapAt())
	}
	if err := e.AppendLap(63); err != nil {
		t.Fatalf("AppendLap: %v", err)
	}
	if !e.FirstLapAt().IsZero() {
		t.Fatalf("appending to a restored entrant stamped %v", e.FirstLapAt())
	}
}
