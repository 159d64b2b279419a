package attendance

import (
	"time"

	"github.com/teambition/rrule-go"
)

var workWeek = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}

// WorkingDays lists the Monday–Friday dates of the given month as
// YYYY-MM-DD strings in ascending order.
func WorkingDays(year int, month time.Month) ([]string, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: workWeek,
		Dtstart:   first,
		Until:     last,
	})
	if err != nil {
		return nil, err
	}

	occurrences := r.All()
	days := make([]string, 0, len(occurrences))
	for _, t := range occurrences {
		days = append(days, t.Format(DateLayout))
	}
	return days, nil
}
