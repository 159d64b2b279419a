package cli

import (
	"fmt"
	"time"

	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/nvquaan/con-bo-cham-chi/internal/submission"
	"github.com/spf13/cobra"
)

type submitOptions struct {
	userID   string
	username string
	kind     string
	date     string
	time     string
}

var submitCmd = LeafCommand{
	Use:   "submit",
	Short: "Submit a single check-in or check-out",
	Example: `  conbo submit --user-id BO-9988 --username conbo --kind in
  conbo submit --user-id BO-9988 --username conbo --kind out --date 2024-03-05 --time 17:45:10`,
	StrFlags: []StringFlag{
		{Name: "user-id", Shorthand: "u", Usage: "HR user ID"},
		{Name: "username", Usage: "HR account name"},
		{Name: "kind", Shorthand: "k", Usage: "event kind: in or out", Default: "in"},
		{Name: "date", Shorthand: "d", Usage: "attendance date (YYYY-MM-DD, default: today)"},
		{Name: "time", Shorthand: "t", Usage: "time of day (HH:MM:SS, default: random within the kind's window)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadAppContext(cmd)
		if err != nil {
			return err
		}

		var opts submitOptions
		opts.userID, _ = cmd.Flags().GetString("user-id")
		opts.username, _ = cmd.Flags().GetString("username")
		opts.kind, _ = cmd.Flags().GetString("kind")
		opts.date, _ = cmd.Flags().GetString("date")
		opts.time, _ = cmd.Flags().GetString("time")

		return runSubmit(cmd, app, opts, attendance.DefaultSource, time.Now)
	},
}.Build()

func runSubmit(
	cmd *cobra.Command,
	app *appContext,
	opts submitOptions,
	src attendance.Source,
	nowFn func() time.Time,
) error {
	if opts.userID == "" {
		return fmt.Errorf("--user-id is required")
	}
	if opts.username == "" {
		return fmt.Errorf("--username is required")
	}

	kind, err := attendance.ParseEventKind(opts.kind)
	if err != nil {
		return err
	}

	date := opts.date
	if date == "" {
		date = attendance.Today(nowFn())
	} else if _, err := attendance.ParseDate(date); err != nil {
		return fmt.Errorf("invalid --date format, expected YYYY-MM-DD: %w", err)
	}

	tod := opts.time
	if tod == "" {
		tod = attendance.Sample(kind, src)
	}

	creds, err := app.store.Load()
	if err != nil {
		return err
	}

	out := app.service().Submit(commandContext(cmd), submission.Request{
		UserID:      opts.userID,
		Username:    opts.username,
		Kind:        kind,
		Date:        date,
		Time:        tod,
		Credentials: creds,
	})

	w := cmd.OutOrStdout()
	printOutcome(w, out)
	if out.NeedsCredentials() {
		_, _ = fmt.Fprintf(w, "%s\n", Warning("run 'conbo auth set' to configure credentials"))
	}
	if !out.OK() {
		return fmt.Errorf("submission failed (%s)", out.Kind)
	}
	return nil
}
