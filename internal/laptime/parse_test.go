package laptime_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"sctime/internal/laptime"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseAcceptedForms(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"7", 7},
		{"45", 45},
		{"90", 90},
		{"45.5", 45.5},
		{"45.25", 45.25},
		{"45.007", 45.007},
		{"1:23", 83},
		{"1:23.4", 83.4},
		{"01:23.400", 83.4},
		{"0:59", 59},
		{"1:02:03", 3723},
		{"1:02:03.5", 3723.5},
		{"23:59:59", 86399},
		{"12345", 5025},
		{"102030", 10*3600 + 20*60 + 30},
		{"240000", 86400},
		{"1000000", 100 * 3600},
		{"123456789", 12345*3600 + 67*60 + 89},
		{"24:00:00", 86400},
		{"100:00:00.5", 360000.5},
		{"  1:23.4  ", 83.4},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := laptime.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
			}
			if !approxEqual(got, tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// Three digits are read as one minute digit followed by two second digits,
// so minutes above 9 cannot be typed in this form and "199" overflows the
// seconds field instead of being rejected.
func TestParseThreeDigitShorthandUsesSingleMinuteDigit(t *testing.T) {
	cases := map[string]float64{
		"134": 94,
		"100": 60,
		"059": 59,
		"199": 159,
	}
	for input, want := range cases {
		got, err := laptime.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		if !approxEqual(got, want) {
			t.Fatalf("Parse(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"12.34.56",
		"1.2.3",
		"12.",
		".5",
		"1234",
		"abc",
		"1:2:3:4",
		"1:60",
		"1:99:00",
		"99999999999999999999999",
		"1:234",
		"-5",
		"1:2x",
		"12.3a",
	}
	for _, input := range cases {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := laptime.Parse(input)
			if err == nil {
				t.Fatalf("expected error for %q", input)
			}
			if !errors.Is(err, laptime.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseDigitsUpToTwoCharactersAreSeconds(t *testing.T) {
	for v := 0; v < 100; v++ {
		for _, input := range []string{fmt.Sprint(v), fmt.Sprintf("%02d", v)} {
			got, err := laptime.Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", input, err)
			}
			if got != float64(v) {
				t.Fatalf("Parse(%q) = %v, want %d", input, got, v)
			}
		}
	}
}

func TestClockFormsRoundTripThroughFormat(t *testing.T) {
	inputs := []string{"0:00", "1:23.4", "9:59.999", "59:59", "1:00:00", "2:03:04.05", "23:59:59.999", "7", "45.125", "240000", "1000000", "123456789"}
	for _, input := range inputs {
		parsed, err := laptime.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		formatted := laptime.Format(parsed)
		reparsed, err := laptime.Parse(formatted)
		if err != nil {
			t.Fatalf("Parse(Format(%q)) = Parse(%q) returned error: %v", input, formatted, err)
		}
		if !approxEqual(parsed, reparsed) {
			t.Fatalf("round trip of %q via %q: %v != %v", input, formatted, parsed, reparsed)
		}
	}
}
