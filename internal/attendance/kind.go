package attendance

import (
	"fmt"
	"strings"
)

// EventKind is the type of attendance event sent to the HR API.
// The numeric values are the wire encoding of typeCheckInOut.
type EventKind int

const (
	CheckIn  EventKind = 1
	CheckOut EventKind = 2
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	return k == CheckIn || k == CheckOut
}

// String returns the lowercase human name of the kind.
func (k EventKind) String() string {
	switch k {
	case CheckIn:
		return "check-in"
	case CheckOut:
		return "check-out"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label returns the uppercase label used in history listings.
func (k EventKind) Label() string {
	return strings.ToUpper(k.String())
}

// Toggle returns the opposite kind.
func (k EventKind) Toggle() EventKind {
	if k == CheckOut {
		return CheckIn
	}
	return CheckOut
}

// ParseEventKind accepts "in", "check-in", "checkin", "1" and the
// corresponding check-out spellings.
func ParseEventKind(s string) (EventKind, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "in", "check-in", "checkin", "1":
		return CheckIn, nil
	case "out", "check-out", "checkout", "2":
		return CheckOut, nil
	}
	return 0, fmt.Errorf("unknown event kind %q (expected in or out)", s)
}
