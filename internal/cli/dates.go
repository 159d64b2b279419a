package cli

import (
	"fmt"
	"time"

	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/spf13/cobra"
)

var datesCmd = LeafCommand{
	Use:   "dates",
	Short: "List the working days of a month",
	StrFlags: []StringFlag{
		{Name: "month", Shorthand: "m", Usage: "month to list (YYYY-MM, default: current month)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		monthFlag, _ := cmd.Flags().GetString("month")
		return runDates(cmd, monthFlag, time.Now)
	},
}.Build()

func runDates(cmd *cobra.Command, monthFlag string, nowFn func() time.Time) error {
	now := nowFn()
	year, month := now.Year(), now.Month()
	if monthFlag != "" {
		m, err := time.Parse("2006-01", monthFlag)
		if err != nil {
			return fmt.Errorf("invalid --month format, expected YYYY-MM: %w", err)
		}
		year, month = m.Year(), m.Month()
	}

	days, err := attendance.WorkingDays(year, month)
	if err != nil {
		return err
	}

	today := attendance.Today(now)
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Info(fmt.Sprintf("%s %d", month, year)))
	for _, d := range days {
		t, _ := attendance.ParseDate(d)
		line := fmt.Sprintf("  %s  %s", attendance.DisplayDate(d), Silent(t.Weekday().String()[:3]))
		if d == today {
			line += "  " + Primary("today")
		}
		_, _ = fmt.Fprintln(w, line)
	}
	return nil
}
