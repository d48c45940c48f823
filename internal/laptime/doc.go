// Package laptime converts operator-typed lap times into seconds and back.
//
// Operators type quickly, so besides clock syntax (H:M:S, M:S, S) the parser
// accepts positional digit shorthand: "45" is 45 seconds, "134" is 1:34 and
// "12345" is 1:23:45. Any form may carry a fractional suffix after a single
// dot. Parsed values are non-negative float64 seconds; Format renders them as
// MM:SS.mmm (or H:MM:SS.mmm past an hour), and every rendered value parses
// back to the same millisecond value.
package laptime
