package attendance

import (
	"fmt"
	"math/rand/v2"
)

// Source draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the process-wide generator.
var DefaultSource Source = globalSource{}

type window struct {
	from, to int // seconds of day, inclusive
}

var windows = map[EventKind]window{
	CheckIn:  {from: hms(8, 13, 0), to: hms(8, 29, 59)},
	CheckOut: {from: hms(17, 33, 0), to: hms(18, 14, 59)},
}

func hms(h, m, s int) int {
	return h*3600 + m*60 + s
}

// Window returns the inclusive candidate range for kind as HH:MM:SS strings.
func Window(kind EventKind) (from, to string) {
	w := windowFor(kind)
	return formatSecondOfDay(w.from), formatSecondOfDay(w.to)
}

func windowFor(kind EventKind) window {
	if w, ok := windows[kind]; ok {
		return w
	}
	return windows[CheckOut]
}

// Sample draws a candidate time for kind, uniformly over the kind's window.
// A nil src uses DefaultSource.
func Sample(kind EventKind, src Source) string {
	if src == nil {
		src = DefaultSource
	}
	w := windowFor(kind)
	return formatSecondOfDay(w.from + src.IntN(w.to-w.from+1))
}

func formatSecondOfDay(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec%3600)/60, sec%60)
}
