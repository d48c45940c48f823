package entrant_test

import (
	"testing"

	"sctime/internal/entrant"
)

func TestValidEntryID(t *testing.T) {
	valid := []string{"1", "9", "10", "999", "1000"}
	invalid := []string{"", "0", "01", "1001", "2000", "abc", "-1", "10000"}
	for _, s := range valid {
		if !entrant.ValidEntryID(s) {
			t.Fatalf("expected %q to be a valid entry ID", s)
		}
	}
	for _, s := range invalid {
		if entrant.ValidEntryID(s) {
			t.Fatalf("expected %q to be an invalid entry ID", s)
		}
	}
}

func TestValidVehicleNumber(t *testing.T) {
	valid := []string{"0", "7", "99", "100", "499", "500"}
	invalid := []string{"", "07", "501", "999", "x1", "-3"}
	for _, s := range valid {
		if !entrant.ValidVehicleNumber(s) {
			t.Fatalf("expected %q to be a valid vehicle number", s)
		}
	}
	for _, s := range invalid {
		if entrant.ValidVehicleNumber(s) {
			t.Fatalf("expected %q to be an invalid vehicle number", s)
		}
	}
}

func TestCheckNumRange(t *testing.T) {
	cases := map[int]bool{-5: false, 0: false, 1: true, 500: true, 750: true, 1000: true, 1001: false}
	for n, ok := range cases {
		got, gotOK := entrant.CheckNumRange(n)
		if gotOK != ok {
			t.Fatalf("CheckNumRange(%d) ok=%v, want %v", n, gotOK, ok)
		}
		if ok && got != n {
			t.Fatalf("CheckNumRange(%d) = %d", n, got)
		}
		if !ok && got != -1 {
			t.Fatalf("CheckNumRange(%d) = %d, want -1", n, got)
		}
	}
}

func TestCheckNameReturnsInputUnchanged(t *testing.T) {
	for _, name := range []string{"O'Neil Racing", "St. Claire-Jones, Team", "Team 42", ""} {
		got, _ := entrant.CheckName(name)
		if got != name {
			t.Fatalf("CheckName(%q) = %q", name, got)
		}
	}
	if !entrant.ValidName("O'Neil Racing") {
		t.Fatal("expected apostrophe name to be valid")
	}
	if entrant.ValidName("Team 42") {
		t.Fatal("expected digits to fail the name format")
	}
}
