package attendance

import (
	"strings"
	"time"
)

// DatePlaceholder is shown by DisplayDate when no date is selected.
const DatePlaceholder = "select a date"

// DateLayout is the layout of a CalendarDate.
const DateLayout = "2006-01-02"

// FormatPayloadDate joins a YYYY-MM-DD date and an HH:MM:SS time into the
// wire form "DD-MM-YYYY HH:MM:SS". Components are used as supplied.
func FormatPayloadDate(date, tod string) string {
	year, month, day := splitDate(date)
	return day + "-" + month + "-" + year + " " + tod
}

func splitDate(date string) (year, month, day string) {
	parts := strings.SplitN(date, "-", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return parts[0], parts[1], parts[2]
}

// DisplayDate renders a YYYY-MM-DD date as DD-MM-YYYY. Empty input yields
// DatePlaceholder; anything that is not three dash-separated parts is
// returned unchanged.
func DisplayDate(date string) string {
	if date == "" {
		return DatePlaceholder
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// Today returns now's local calendar date as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// ParseDate checks that s is a real YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}
