package transfer_test

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"sctime/internal/entrant"
	"sctime/internal/laptime"
	"sctime/internal/transfer"
)

func TestExportThenImportKeepsTuples(t *testing.T) {
	c := entrant.NewCollection(nil)
	c.Add("Red Team", 7)
	c.Add("O'Neil, Racing", 12)
	c.Add("Idle", 3)
	for _, d := range []float64{83.4, 90, 3723.5} {
		_ = c.AppendLap(0, d)
	}
	_ = c.AppendLap(1, 61.25)
	_ = c.AppendLap(1, 90061.5)

	var buf bytes.Buffer
	if err := transfer.Export(&buf, c.Snapshot()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "name,number,lap1,lap2,lap3\n") {
		t.Fatalf("unexpected header in %q", buf.String())
	}

	imported, err := transfer.Import(&buf)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(imported) != 3 {
		t.Fatalf("expected 3 entrants, got %d", len(imported))
	}
	original := c.Snapshot()
	for i, e := range imported {
		if e.Name() != original[i].Name() || e.Number() != original[i].Number() {
			t.Fatalf("entrant %d: got %q #%d", i, e.Name(), e.Number())
		}
		if !slices.Equal(e.Laps(), original[i].Laps()) {
			t.Fatalf("entrant %d laps: got %v want %v", i, e.Laps(), original[i].Laps())
		}
	}
	for i, e := range imported {
		if !e.FirstLapAt().IsZero() {
			t.Fatalf("entrant %d: expected no first-lap time after import, got %v", i, e.FirstLapAt())
		}
	}
}

func TestImportAcceptsShorthandWithoutHeader(t *testing.T) {
	input := "Blue, 4, 134, 1:02.5, 59,,\n"
	imported, err := transfer.Import(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(imported) != 1 {
		t.Fatalf("expected 1 entrant, got %d", len(imported))
	}
	if got := imported[0].Laps(); !slices.Equal(got, []float64{94, 62.5, 59}) {
		t.Fatalf("unexpected laps %v", got)
	}
}

func TestImportReportsLineNumbers(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  string
		is    error
	}{
		{"bad number", "name,number\nA,1\nB,x\n", "line 3", transfer.ErrMalformed},
		{"bad lap", "A,1,60,12.34.56\n", "line 1", laptime.ErrInvalid},
		{"gap", "A,1,60,,61\n", "line 1", transfer.ErrMalformed},
		{"short", "A\n", "line 1", transfer.ErrMalformed},
		{"empty name", " ,5\n", "line 1", transfer.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transfer.Import(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tc.is) {
				t.Fatalf("expected %v, got %v", tc.is, err)
			}
			if !strings.Contains(err.Error(), tc.line) {
				t.Fatalf("expected %q in %v", tc.line, err)
			}
		})
	}
}

func TestImportIntoAssignsFreshIdentities(t *testing.T) {
	c := entrant.NewCollection(nil)
	c.Add("Existing", 1)

	added, err := transfer.ImportInto(c, strings.NewReader("name,number\nA,2,60\nB,3\n"))
	if err != nil {
		t.Fatalf("ImportInto: %v", err)
	}
	if added != 2 || c.Count() != 3 || c.NextID() != 3 {
		t.Fatalf("added=%d count=%d next=%d", added, c.Count(), c.NextID())
	}
	b, err := c.ByName("B")
	if err != nil || b.ID() != 2 {
		t.Fatalf("ByName(B) = %v, %v", b, err)
	}

	if _, err := transfer.ImportInto(c, strings.NewReader("C,4\nD,x\n")); err == nil {
		t.Fatal("expected error")
	}
	if c.Count() != 3 {
		t.Fatalf("failed import added entrants: %d", c.Count())
	}
}
