package entrant

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	// ErrNotFound is returned when no entrant matches a lookup.
	ErrNotFound = errors.New("entrant not found")
	// ErrLapIndex is returned when a lap index is outside the lap list.
	ErrLapIndex = errors.New("lap index out of range")
	// ErrNegativeDuration is returned for lap durations below zero.
	ErrNegativeDuration = errors.New("lap duration must not be negative")
)

// Entrant is one competitor and its laps in driving order.
type Entrant struct {
	id         int
	name       string
	number     int
	laps       []float64
	firstLapAt time.Time

	// onLap is set by the owning collection and receives the affected lap index.
	onLap func(e *Entrant, lap int)
	now   func() time.Time
}

// New returns an entrant without laps.
func New(id int, name string, number int) *Entrant {
	return &Entrant{id: id, name: name, number: number, now: timeNow}
}

// Restore rebuilds an entrant from persisted or imported data. The identity is
// assigned when the entrant joins a collection. A zero firstLapAt is kept
// as given, even when laps are present.
func Restore(name string, number int, laps []float64, firstLapAt time.Time) (*Entrant, error) {
	for i, d := range laps {
		if d < 0 {
			return nil, fmt.Errorf("lap %d: %w", i, ErrNegativeDuration)
		}
	}
	e := New(0, name, number)
	e.laps = slices.Clone(laps)
	e.firstLapAt = firstLapAt
	return e, nil
}

func (e *Entrant) ID() int { return e.id }

func (e *Entrant) Name() string { return e.name }

func (e *Entrant) Number() int { return e.number }

func (e *Entrant) LapCount() int { return len(e.laps) }

// Laps returns a copy of the lap list.
func (e *Entrant) Laps() []float64 { return slices.Clone(e.laps) }

// Lap returns the duration of one lap.
func (e *Entrant) Lap(index int) (float64, bool) {
	if index < 0 || index >= len(e.laps) {
		return 0, false
	}
	return e.laps[index], true
}

// HighestLapIndex returns the index of the last lap, or -1 without laps.
func (e *Entrant) HighestLapIndex() int { return len(e.laps) - 1 }

// FirstLapAt is when the first lap was recorded; zero until then.
func (e *Entrant) FirstLapAt() time.Time { return e.firstLapAt }

// Clone returns an independent copy that is not attached to any collection.
func (e *Entrant) Clone() *Entrant {
	return &Entrant{
		id:         e.id,
		name:       e.name,
		number:     e.number,
		laps:       slices.Clone(e.laps),
		firstLapAt: e.firstLapAt,
		now:        e.now,
	}
}

// AppendLap records the next lap. The first lap ever recorded stamps FirstLapAt.
func (e *Entrant) AppendLap(d float64) error {
	if d < 0 {
		return ErrNegativeDuration
	}
	if len(e.laps) == 0 && e.firstLapAt.IsZero() {
		e.firstLapAt = e.now()
	}
	e.laps = append(e.laps, d)
	e.notify(len(e.laps) - 1)
	return nil
}

// EditLap replaces an existing lap.
func (e *Entrant) EditLap(index int, d float64) error {
	if index < 0 || index >= len(e.laps) {
		return fmt.Errorf("%w: %d of %d", ErrLapIndex, index, len(e.laps))
	}
	if d < 0 {
		return ErrNegativeDuration
	}
	e.laps[index] = d
	e.notify(index)
	return nil
}

// RemoveLap deletes a lap; later laps move up by one.
func (e *Entrant) RemoveLap(index int) error {
	if index < 0 || index >= len(e.laps) {
		return fmt.Errorf("%w: %d of %d", ErrLapIndex, index, len(e.laps))
	}
	e.laps = slices.Delete(e.laps, index, index+1)
	e.notify(index)
	return nil
}

func (e *Entrant) setID(id int) { e.id = id }

func (e *Entrant) notify(lap int) {
	if e.onLap != nil {
		e.onLap(e, lap)
	}
}

var timeNow = time.Now
