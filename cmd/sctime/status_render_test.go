package main

import (
	"strings"
	"testing"

	"sctime/internal/deps"
)

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Database", statusOK, "/tmp/sessions.db", false)
	if !strings.Contains(line, "Database:") || !strings.Contains(line, "[OK] /tmp/sessions.db") {
		t.Fatalf("unexpected line %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no color codes, got %q", line)
	}
	colored := renderStatusLine("Database", statusWarn, "", true)
	if !strings.HasPrefix(colored, ansiYellow) || !strings.HasSuffix(colored, ansiReset) || !strings.Contains(colored, "[WARN]") {
		t.Fatalf("unexpected colored line %q", colored)
	}
}

func TestRenderDependencyStatus(t *testing.T) {
	ok := renderDependencyStatus(deps.Status{Name: "FFmpeg", Command: "/usr/bin/ffmpeg", Available: true}, false)
	if !strings.Contains(ok, "[OK] /usr/bin/ffmpeg") {
		t.Fatalf("unexpected available line %q", ok)
	}
	missing := renderDependencyStatus(deps.Status{Name: "OCR", Detail: `binary "x" not found`}, false)
	if !strings.Contains(missing, "[ERROR]") {
		t.Fatalf("unexpected missing line %q", missing)
	}
	optional := renderDependencyStatus(deps.Status{Name: "OCR", Optional: true, Detail: "gone"}, false)
	if !strings.Contains(optional, "[WARN]") {
		t.Fatalf("unexpected optional line %q", optional)
	}
}

func TestEntrantWarnings(t *testing.T) {
	if got := entrantWarnings("Red Team", 7); len(got) != 0 {
		t.Fatalf("expected no warnings, got %v", got)
	}
	if got := entrantWarnings("R2D2", 0); len(got) != 2 {
		t.Fatalf("expected two warnings, got %v", got)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable("Heat", []string{"Lap", "A", "B"}, [][]string{{"1", "01:00.000"}}, []columnAlignment{alignRight})
	for _, want := range []string{"Heat", "Lap", "01:00.000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
	if renderTable("", nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
