package attendance

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidTime is returned when a time string is not strict HH:MM:SS.
var ErrInvalidTime = errors.New("invalid time")

// 24-hour, zero-padded HH:MM:SS
var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)$`)

// IsValidTime reports whether s is a zero-padded 24-hour HH:MM:SS string.
func IsValidTime(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// ValidateTime returns ErrInvalidTime (wrapped with the offending value)
// when s does not pass IsValidTime.
func ValidateTime(s string) error {
	if !IsValidTime(s) {
		return fmt.Errorf("%w %q, expected HH:MM:SS", ErrInvalidTime, s)
	}
	return nil
}
