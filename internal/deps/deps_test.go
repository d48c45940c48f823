package deps_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sctime/internal/config"
	"sctime/internal/deps"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []deps.Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  "},
	}

	results := deps.CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary with detail, got %#v", results[1])
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for unset command: %q", results[2].Detail)
	}
}

func TestCaptureRequirementsUseConfiguredOCR(t *testing.T) {
	cfg := config.Default()
	cfg.Capture.OCRCommand = []string{"my-ocr", "{frame}"}

	reqs := deps.CaptureRequirements(&cfg)
	if len(reqs) != 2 || reqs[0].Command != "ffmpeg" || reqs[1].Command != "my-ocr" {
		t.Fatalf("unexpected requirements %+v", reqs)
	}
}

func TestMissingErrorIgnoresOptional(t *testing.T) {
	statuses := []deps.Status{
		{Name: "A", Available: true},
		{Name: "B", Optional: true, Detail: "gone"},
	}
	if err := deps.MissingError(statuses); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	statuses = append(statuses, deps.Status{Name: "OCR", Detail: `binary "x" not found`})
	err := deps.MissingError(statuses)
	if err == nil || !strings.Contains(err.Error(), "OCR") {
		t.Fatalf("expected OCR in error, got %v", err)
	}
}
