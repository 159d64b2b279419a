package cli

import (
	"fmt"
	"io"

	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/nvquaan/con-bo-cham-chi/internal/history"
	"github.com/nvquaan/con-bo-cham-chi/internal/submission"
)

func printOutcome(w io.Writer, out submission.Outcome) {
	if out.OK() {
		_, _ = fmt.Fprintf(w, "%s %s\n",
			Success("✔"),
			Text(fmt.Sprintf("%s at %s submitted", out.EventKind.Label(), Primary(out.Payload.OccurredAt))),
		)
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Error("✘"), Error(out.Message))
}

func printHistory(w io.Writer, entries []history.Entry, capacity int) {
	_, _ = fmt.Fprintf(w, "%s\n", Info(fmt.Sprintf("History (%d/%d)", len(entries), capacity)))
	if len(entries) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", Silent("no attempts yet"))
		return
	}
	for _, e := range entries {
		result := Success("ok")
		if !e.Succeeded() {
			result = Error(e.Error)
		}
		_, _ = fmt.Fprintf(w, "  %s  %s  %-9s  %s  %s\n",
			Silent(shortID(e.ID)),
			Silent(e.CreatedAt.Format("15:04")),
			e.Kind.Label(),
			Primary(e.OccurredAt),
			result,
		)
	}
}

func printSelection(w io.Writer, date string, kind attendance.EventKind, tod string) {
	from, to := attendance.Window(kind)
	timeText := Primary(tod)
	if !attendance.IsValidTime(tod) {
		timeText = Error(tod + " (expected HH:MM:SS)")
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Date:"), Primary(attendance.DisplayDate(date)))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Kind:"), Primary(kind.Label()))
	_, _ = fmt.Fprintf(w, "%s  %s %s\n", Silent("Time:"), timeText, Silent(fmt.Sprintf("(window %s–%s)", from, to)))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
