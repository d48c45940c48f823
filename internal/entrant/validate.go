package entrant

import (
	"regexp"
	"strconv"
)

// Advisory checks for the display layer. The collection itself accepts any
// name and number.
var (
	entryIDPattern       = regexp.MustCompile(`^([1-9][0-9]{0,2}|1000)$`)
	vehicleNumberPattern = regexp.MustCompile(`^(500|[1-4][0-9]{2}|[1-9]?[0-9])$`)
	namePattern          = regexp.MustCompile(`(?i)^[a-z ,.'-]+$`)
)

// ValidEntryID reports whether text is an entry ID between 1 and 1000
// without leading zeros.
func ValidEntryID(text string) bool {
	return entryIDPattern.MatchString(text)
}

// ValidVehicleNumber reports whether text is a vehicle number between 0 and
// 500 without leading zeros.
func ValidVehicleNumber(text string) bool {
	return vehicleNumberPattern.MatchString(text)
}

// CheckNumRange returns n and true when n is positive and matches either the
// vehicle number or the entry ID range.
func CheckNumRange(n int) (int, bool) {
	if n <= 0 {
		return -1, false
	}
	s := strconv.Itoa(n)
	if ValidVehicleNumber(s) || ValidEntryID(s) {
		return n, true
	}
	return -1, false
}

// ValidName reports whether name contains only letters, spaces and the
// punctuation , . ' -
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// CheckName returns name unchanged together with the ValidName verdict, so
// callers may accept names that fail the format check.
func CheckName(name string) (string, bool) {
	return name, ValidName(name)
}
