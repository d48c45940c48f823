package main

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"sctime/internal/laptime"
	"sctime/internal/leaderboard"
)

// formatSince renders t relative to now, or "-" for the zero time.
func formatSince(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func formatLap(seconds float64, ok bool) string {
	if !ok {
		return "-"
	}
	return laptime.Format(seconds)
}

func formatGap(s leaderboard.Standing) string {
	if s.Position == 1 {
		return "-"
	}
	if s.GapLaps > 0 {
		return "+" + humanize.Comma(int64(s.GapLaps)) + " " + pluralLaps(s.GapLaps)
	}
	return laptime.FormatGap(s.GapSeconds)
}

func pluralLaps(n int) string {
	if n == 1 {
		return "lap"
	}
	return "laps"
}

func parseIndex(value, label string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &usageError{label: label, value: value}
	}
	return n, nil
}

type usageError struct {
	label string
	value string
}

func (e *usageError) Error() string {
	return "invalid " + e.label + " " + strconv.Quote(e.value)
}

const timeLayout = time.RFC3339
