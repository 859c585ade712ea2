package field

import (
	"errors"
	"strconv"
	"strings"
)

// Input fallbacks used when a field cannot be parsed.
const (
	DefaultCount = 1
	DefaultCoord = 0
)

// ParseCount coerces a board count input. Anything that does not start with
// an integer, and any value below 1, yields DefaultCount. Values above
// MaxCount yield MaxCount.
func ParseCount(s string) int {
	n, ok := leadingInt(s)
	if !ok || n < 1 {
		return DefaultCount
	}
	return min(n, MaxCount)
}

// ParseCoord coerces a coordinate input. Anything that does not start with an
// integer yields DefaultCoord. Values are clamped to ±MaxCoord.
func ParseCoord(s string) int {
	n, ok := leadingInt(s)
	if !ok {
		return DefaultCoord
	}
	return clampCoord(n)
}

// leadingInt parses the integer prefix of s after surrounding whitespace,
// so "12abc" is 12 and "3.7" is 3.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		// Saturated at the int limit of the same sign
		return n, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}
