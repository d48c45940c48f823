// Package transfer moves entrants in and out of a session as CSV. Each row is
// one entrant: name, vehicle number, then its laps in driving order.
package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"sctime/internal/entrant"
	"sctime/internal/laptime"
)

// ErrMalformed is returned for rows that cannot be turned into an entrant.
var ErrMalformed = errors.New("malformed entrant row")

var header = []string{"name", "number"}

// Export writes a header and one row per entrant. Laps are written in the
// clock form accepted by laptime.Parse.
func Export(w io.Writer, snapshot []*entrant.Entrant) error {
	highest := 0
	for _, e := range snapshot {
		highest = max(highest, e.LapCount())
	}

	cw := csv.NewWriter(w)
	head := append([]string{}, header...)
	for i := 1; i <= highest; i++ {
		head = append(head, "lap"+strconv.Itoa(i))
	}
	if err := cw.Write(head); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range snapshot {
		row := make([]string, 0, 2+e.LapCount())
		row = append(row, e.Name(), strconv.Itoa(e.Number()))
		for _, d := range e.Laps() {
			row = append(row, laptime.Format(d))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write entrant %d: %w", e.ID(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Import reads rows written by Export, or hand-made rows in the same layout.
// The header row is optional. Lap cells may use any form laptime.Parse
// accepts; trailing empty cells are ignored but a gap between laps is an
// error. Returned entrants are detached and ready for AddExisting.
func Import(r io.Reader) ([]*entrant.Entrant, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []*entrant.Entrant
	for first := true; ; first = false {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if first && isHeader(record) {
			continue
		}
		e, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// ImportInto adds every imported entrant to c and returns how many were added.
// Nothing is added when any row fails.
func ImportInto(c *entrant.Collection, r io.Reader) (int, error) {
	entrants, err := Import(r)
	if err != nil {
		return 0, err
	}
	for _, e := range entrants {
		c.AddExisting(e)
	}
	return len(entrants), nil
}

func isHeader(record []string) bool {
	return len(record) >= 2 &&
		strings.EqualFold(strings.TrimSpace(record[0]), header[0]) &&
		strings.EqualFold(strings.TrimSpace(record[1]), header[1])
}

func parseRow(record []string) (*entrant.Entrant, error) {
	if len(record) < 2 {
		return nil, fmt.Errorf("%w: want name and number, got %d fields", ErrMalformed, len(record))
	}
	name := strings.TrimSpace(record[0])
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrMalformed)
	}
	number, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrMalformed, record[1])
	}

	cells := record[2:]
	for len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	laps := make([]float64, 0, len(cells))
	for i, cell := range cells {
		if strings.TrimSpace(cell) == "" {
			return nil, fmt.Errorf("%w: lap %d is empty", ErrMalformed, i+1)
		}
		d, err := laptime.Parse(cell)
		if err != nil {
			return nil, fmt.Errorf("lap %d: %w", i+1, err)
		}
		laps = append(laps, d)
	}

	return entrant.Restore(name, number, laps, time.Time{})
}
