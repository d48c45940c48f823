package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"sctime/internal/entrant"
	"sctime/internal/laptime"
	"sctime/internal/logging"
)

// Default display floor used when Options leaves a dimension unset.
const (
	DefaultMinColumns = 11
	DefaultMinRows    = 19
)

var (
	// ErrNoEntrant is returned when a write targets a column without an entrant.
	ErrNoEntrant = errors.New("column has no entrant")
	// ErrInvalidTime is returned when the written text is not a lap time.
	ErrInvalidTime = errors.New("cell text is not a lap time")
	// ErrRowOutOfRange is returned when a write would leave a gap in the lap list.
	ErrRowOutOfRange = errors.New("row is not an existing lap or the next free lap")
)

// Options sets the minimum grid size shown while the collection is small.
type Options struct {
	MinColumns int
	MinRows    int
}

// Invalidation names a cell that changed. The header flags are always set
// because a lap change can move the lap-count row labels and the entrant label.
type Invalidation struct {
	Row          int
	Column       int
	ColumnHeader bool
	RowHeader    bool
}

// Cell identifies one grid coordinate.
type Cell struct {
	Row    int
	Column int
}

// Adapter translates grid coordinates to collection operations.
type Adapter struct {
	entrants *entrant.Collection
	opts     Options
	logger   *slog.Logger

	listeners []func(Invalidation)
	cancel    func()

	lastWrite    Cell
	hasLastWrite bool
}

// New wraps c. Zero or negative option values fall back to the defaults.
func New(c *entrant.Collection, opts Options, logger *slog.Logger) *Adapter {
	if opts.MinColumns <= 0 {
		opts.MinColumns = DefaultMinColumns
	}
	if opts.MinRows <= 0 {
		opts.MinRows = DefaultMinRows
	}
	a := &Adapter{
		entrants: c,
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "grid"),
	}
	a.cancel = c.Subscribe(a.onChange)
	return a
}

// Close stops forwarding collection changes. The collection is left intact.
func (a *Adapter) Close() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.listeners = nil
}

// Subscribe registers fn for invalidations. Delivery is synchronous.
func (a *Adapter) Subscribe(fn func(Invalidation)) {
	a.listeners = append(a.listeners, fn)
}

func (a *Adapter) onChange(change entrant.Change) {
	inv := Invalidation{
		Row:          change.Row,
		Column:       change.Column,
		ColumnHeader: true,
		RowHeader:    true,
	}
	for _, fn := range a.listeners {
		fn(inv)
	}
}

// ColumnCount is one more than the entrant count, never below MinColumns.
func (a *Adapter) ColumnCount() int {
	return max(a.entrants.Count()+1, a.opts.MinColumns)
}

// RowCount is one more than the longest lap list, never below MinRows.
func (a *Adapter) RowCount() int {
	return max(a.entrants.HighestLapCount()+1, a.opts.MinRows)
}

func (a *Adapter) isEntrant(col int) bool {
	return col >= 0 && col < a.entrants.Count()
}

// Cell returns the formatted lap at (row, col), or false for an empty cell.
func (a *Adapter) Cell(row, col int) (string, bool) {
	if !a.isEntrant(col) {
		return "", false
	}
	d, ok := a.entrants.Lap(col, row)
	if !ok {
		return "", false
	}
	return laptime.Format(d), true
}

// ColumnHeader returns the entrant name for a real column.
func (a *Adapter) ColumnHeader(col int) (string, bool) {
	e, err := a.entrants.ByID(col)
	if err != nil {
		return "", false
	}
	return e.Name(), true
}

// RowHeader returns the 1-based lap number for rows that hold at least one lap.
func (a *Adapter) RowHeader(row int) (int, bool) {
	if row < 0 || row >= a.entrants.HighestLapCount() {
		return 0, false
	}
	return row + 1, true
}

// Editable reports whether (row, col) is an existing lap or the next free lap
// of a real entrant.
func (a *Adapter) Editable(row, col int) bool {
	if !a.isEntrant(col) || row < 0 {
		return false
	}
	count, err := a.entrants.LapCount(col)
	if err != nil {
		return false
	}
	return row <= count
}

// SetCell parses text and stores it at (row, col). A row inside the lap list
// replaces that lap; the row just past it appends. Nothing changes on error.
func (a *Adapter) SetCell(row, col int, text string) error {
	if !a.isEntrant(col) {
		a.logger.Debug("write rejected", append(logging.Cell(row, col), logging.String("reason", "no entrant"))...)
		return fmt.Errorf("column %d: %w", col, ErrNoEntrant)
	}
	count, err := a.entrants.LapCount(col)
	if err != nil {
		return fmt.Errorf("column %d: %w", col, ErrNoEntrant)
	}

	d, err := laptime.Parse(text)
	if err != nil {
		a.logger.Debug("write rejected",
			append(logging.Cell(row, col), logging.String("text", text), logging.Error(err))...,
		)
		return fmt.Errorf("%w: %w", ErrInvalidTime, err)
	}

	switch {
	case row >= 0 && row < count:
		err = a.entrants.EditLap(col, row, d)
	case row == count:
		err = a.entrants.AppendLap(col, d)
	default:
		a.logger.Debug("write rejected",
			append(logging.Cell(row, col), logging.Int("lap_count", count))...,
		)
		return fmt.Errorf("row %d with %d laps: %w", row, count, ErrRowOutOfRange)
	}
	if err != nil {
		return err
	}

	a.lastWrite = Cell{Row: row, Column: col}
	a.hasLastWrite = true
	a.logger.Debug("lap written", append(logging.Cell(row, col), logging.Float64("seconds", d))...)
	return nil
}

// ClearCell removes the lap at (row, col); later laps move up one row.
func (a *Adapter) ClearCell(row, col int) error {
	if !a.isEntrant(col) {
		return fmt.Errorf("column %d: %w", col, ErrNoEntrant)
	}
	if err := a.entrants.RemoveLap(col, row); err != nil {
		return fmt.Errorf("row %d: %w", row, ErrRowOutOfRange)
	}
	return nil
}

// LastWrite returns the cell most recently written through SetCell.
func (a *Adapter) LastWrite() (Cell, bool) {
	return a.lastWrite, a.hasLastWrite
}

// NextRow returns the first free row of a column, which is its lap count.
func (a *Adapter) NextRow(col int) (int, error) {
	count, err := a.entrants.LapCount(col)
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", col, ErrNoEntrant)
	}
	return count, nil
}

// Rows renders the grid as text rows for tabular output. The first element of
// each row is the lap label; empty cells are blank strings.
func (a *Adapter) Rows() (headers []string, rows [][]string) {
	columns := a.entrants.Count()
	headers = make([]string, 0, columns+1)
	headers = append(headers, "Lap")
	for col := 0; col < columns; col++ {
		name, _ := a.ColumnHeader(col)
		headers = append(headers, name)
	}
	for row := 0; row < a.entrants.HighestLapCount(); row++ {
		label, _ := a.RowHeader(row)
		line := make([]string, 0, columns+1)
		line = append(line, strconv.Itoa(label))
		for col := 0; col < columns; col++ {
			text, _ := a.Cell(row, col)
			line = append(line, text)
		}
		rows = append(rows, line)
	}
	return headers, rows
}
