package laptime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid reports text that is not a recognizable lap time.
var ErrInvalid = errors.New("invalid lap time")

// unbounded marks a clock field with no upper limit or width cap.
const unbounded = -1

// clockLayout is one colon-delimited form with the upper bound for each field,
// most significant first.
type clockLayout struct {
	name   string
	limits []int
}

// Tried in order; the first layout that matches wins. Hours are unbounded so
// every value Format renders parses back.
var clockLayouts = []clockLayout{
	{name: "H:M:S", limits: []int{unbounded, 59, 59}},
	{name: "M:S", limits: []int{59, 59}},
	{name: "S", limits: []int{59}},
}

// Parse converts free-text lap time input into total seconds.
func Parse(text string) (float64, error) {
	value := strings.TrimSpace(text)
	if value == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalid)
	}

	parts := strings.Split(value, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: %q has more than one fractional separator", ErrInvalid, value)
	}

	seconds, err := parseWhole(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %s", ErrInvalid, value, err)
	}

	if len(parts) == 2 {
		fraction, err := parseFraction(parts[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %s", ErrInvalid, value, err)
		}
		seconds += fraction
	}
	return seconds, nil
}

func parseWhole(whole string) (float64, error) {
	if whole == "" {
		return 0, errors.New("missing whole seconds")
	}
	if isDigits(whole) {
		if seconds, ok := splitShorthand(whole); ok {
			return seconds, nil
		}
	}
	for _, layout := range clockLayouts {
		if seconds, ok := matchClock(whole, layout); ok {
			return seconds, nil
		}
	}
	return 0, errors.New("no time format matches")
}

// splitShorthand decodes digit-only input by its length:
//
//	1-2 digits  seconds
//	3 digits    M SS
//	5+ digits   H... MM SS
//
// Four digits have no positional meaning and are rejected, as are hour runs
// too large to count in seconds.
func splitShorthand(digits string) (float64, bool) {
	n := len(digits)
	switch {
	case n <= 2:
		return float64(atoi(digits)), true
	case n == 3:
		return float64(atoi(digits[:1])*60 + atoi(digits[1:])), true
	case n >= 5:
		hours, ok := parseHours(digits[:n-4])
		if !ok {
			return 0, false
		}
		minutes := atoi(digits[n-4 : n-2])
		secs := atoi(digits[n-2:])
		return float64(hours*3600 + minutes*60 + secs), true
	default:
		return 0, false
	}
}

func matchClock(text string, layout clockLayout) (float64, bool) {
	fields := strings.Split(text, ":")
	if len(fields) != len(layout.limits) {
		return 0, false
	}
	total := 0
	for i, f := range fields {
		if !isDigits(f) {
			return 0, false
		}
		var v int
		if layout.limits[i] == unbounded {
			hours, ok := parseHours(f)
			if !ok {
				return 0, false
			}
			v = hours
		} else {
			if len(f) > 2 {
				return 0, false
			}
			v = atoi(f)
			if v > layout.limits[i] {
				return 0, false
			}
		}
		total = total*60 + v
	}
	return float64(total), true
}

// parseHours reads an hour count, refusing values whose total in seconds
// would not fit an int.
func parseHours(digits string) (int, bool) {
	v, err := strconv.Atoi(digits)
	if err != nil || v > math.MaxInt/3600-1 {
		return 0, false
	}
	return v, true
}

func parseFraction(digits string) (float64, error) {
	if digits == "" || !isDigits(digits) {
		return 0, fmt.Errorf("fraction %q is not numeric", digits)
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("fraction %q: %w", digits, err)
	}
	return float64(v) / math.Pow10(len(digits)), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// atoi is only called on validated digit strings short enough to fit an int.
func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
