package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/nvquaan/con-bo-cham-chi/internal/credential"
	"github.com/nvquaan/con-bo-cham-chi/internal/report"
	"github.com/nvquaan/con-bo-cham-chi/internal/session"
	"github.com/spf13/cobra"
)

type startOptions struct {
	userID   string
	username string
	export   string
}

// startDeps bundles the interactive side-effects for testability.
type startDeps struct {
	prompts PromptKit
	source  attendance.Source
	now     func() time.Time
	isTTY   func() bool
}

func defaultStartDeps() startDeps {
	return startDeps{
		prompts: NewPromptKit(),
		source:  attendance.DefaultSource,
		now:     time.Now,
		isTTY:   stdoutIsTTY,
	}
}

var startCmd = LeafCommand{
	Use:   "start",
	Short: "Start an interactive attendance session",
	StrFlags: []StringFlag{
		{Name: "user-id", Shorthand: "u", Usage: "HR user ID (prompted if omitted)"},
		{Name: "username", Usage: "HR account name (prompted if omitted)"},
		{Name: "export", Usage: "write the session history to this file on quit (.pdf, .html or .md)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadAppContext(cmd)
		if err != nil {
			return err
		}

		var opts startOptions
		opts.userID, _ = cmd.Flags().GetString("user-id")
		opts.username, _ = cmd.Flags().GetString("username")
		opts.export, _ = cmd.Flags().GetString("export")

		return runStart(cmd, app, opts, defaultStartDeps())
	},
}.Build()

const (
	actionSubmit = iota
	actionToggleKind
	actionChangeDate
	actionEditTime
	actionHistory
	actionCredentials
	actionExport
	actionQuit
)

func runStart(cmd *cobra.Command, app *appContext, opts startOptions, deps startDeps) error {
	w := cmd.OutOrStdout()

	if (opts.userID == "" || opts.username == "") && !deps.isTTY() {
		return fmt.Errorf("an interactive session needs a terminal (or pass --user-id and --username)")
	}

	username, userID, err := login(deps.prompts, opts.username, opts.userID)
	if err != nil {
		if isAbort(err) {
			return nil
		}
		return err
	}

	sess, err := session.New(session.Options{
		UserID:      userID,
		Username:    username,
		Submitter:   app.service(),
		Store:       app.store,
		HistorySize: app.cfg.HistorySize,
		Source:      deps.source,
		Now:         deps.now,
	})
	if errors.Is(err, credential.ErrCorruptStore) {
		return fmt.Errorf("%w (run 'conbo auth set' to replace it)", err)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("Signed in as %s (%s)", Primary(username), Silent(userID))))
	if !sess.Credentials().Complete() {
		_, _ = fmt.Fprintf(w, "%s\n", Warning("credentials are not configured yet"))
	}

	finish := func() error {
		if opts.export == "" {
			return nil
		}
		return exportHistory(w, sess, opts.export, deps.now)
	}

	for {
		_, _ = fmt.Fprintln(w)
		printSelection(w, sess.Date(), sess.Kind(), sess.Time())

		action, err := deps.prompts.Select("What next?", []string{
			fmt.Sprintf("Submit %s", sess.Kind()),
			fmt.Sprintf("Switch to %s", sess.Kind().Toggle()),
			"Change date",
			"Edit time",
			"Show history",
			"Credentials",
			"Export history",
			"Quit",
		})
		if err != nil {
			if isAbort(err) {
				return finish()
			}
			return err
		}

		switch action {
		case actionSubmit:
			err = submitFromSession(cmd, w, sess, deps.prompts)
		case actionToggleKind:
			sess.SetKind(sess.Kind().Toggle())
		case actionChangeDate:
			err = changeDate(sess, deps.prompts, deps.now)
		case actionEditTime:
			err = editTime(w, sess, deps.prompts)
		case actionHistory:
			err = showHistory(w, sess.History(), sess.HistoryCap())
		case actionCredentials:
			err = editCredentials(w, sess, deps.prompts)
		case actionExport:
			var path string
			path, err = deps.prompts.Prompt("Export to (.pdf, .html or .md, empty for a PDF in the current directory)", nil)
			if err == nil {
				err = exportHistory(w, sess, path, deps.now)
			}
		case actionQuit:
			return finish()
		}

		if err != nil {
			if isAbort(err) {
				continue
			}
			return err
		}
	}
}

func login(pk PromptKit, username, userID string) (string, string, error) {
	var err error
	if username == "" {
		if username, err = pk.Prompt("Account name", required("account name")); err != nil {
			return "", "", err
		}
	}
	if userID == "" {
		if userID, err = pk.Prompt("User ID", required("user ID")); err != nil {
			return "", "", err
		}
	}
	if username == "" || userID == "" {
		return "", "", fmt.Errorf("account name and user ID are both required")
	}
	return username, userID, nil
}

func submitFromSession(cmd *cobra.Command, w io.Writer, sess *session.Session, pk PromptKit) error {
	if !sess.TimeValid() {
		_, _ = fmt.Fprintf(w, "%s\n", Error("fix the time first, expected HH:MM:SS"))
		return nil
	}

	out, err := sess.Submit(commandContext(cmd))
	if err != nil {
		_, _ = fmt.Fprintf(w, "%s\n", Warning(err.Error()))
		return nil
	}
	printOutcome(w, out)

	if out.NeedsCredentials() {
		return editCredentials(w, sess, pk)
	}
	return nil
}

func changeDate(sess *session.Session, pk PromptKit, nowFn func() time.Time) error {
	today := attendance.Today(nowFn())
	current, err := attendance.ParseDate(sess.Date())
	if err != nil {
		current = nowFn()
	}

	days, err := attendance.WorkingDays(current.Year(), current.Month())
	if err != nil {
		return err
	}

	options := []string{fmt.Sprintf("Today (%s)", attendance.DisplayDate(today))}
	for _, d := range days {
		options = append(options, attendance.DisplayDate(d))
	}
	options = append(options, "Other date...")

	idx, err := pk.Select("Attendance date", options)
	if err != nil {
		return err
	}

	switch {
	case idx == 0:
		sess.SetDate(today)
	case idx <= len(days):
		sess.SetDate(days[idx-1])
	default:
		date, err := pk.Prompt("Date (YYYY-MM-DD)", func(s string) error {
			_, err := attendance.ParseDate(s)
			return err
		})
		if err != nil {
			return err
		}
		if _, err := attendance.ParseDate(date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}
		sess.SetDate(date)
	}
	return nil
}

func editTime(w io.Writer, sess *session.Session, pk PromptKit) error {
	tod, err := pk.Prompt("Time (HH:MM:SS)", attendance.ValidateTime)
	if err != nil {
		return err
	}
	sess.SetTime(tod)
	if !sess.TimeValid() {
		_, _ = fmt.Fprintf(w, "%s\n", Warning("time is not HH:MM:SS, submission is disabled until fixed"))
	}
	return nil
}

func editCredentials(w io.Writer, sess *session.Session, pk PromptKit) error {
	next, err := promptCredentials(pk, sess.Credentials(), "", "")
	if err != nil {
		return err
	}

	confirmed, err := pk.Confirm("Save credentials?")
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintf(w, "%s\n", Text("credentials not saved"))
		return nil
	}

	if err := sess.SaveCredentials(next); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text("credentials saved"))
	return nil
}

func exportHistory(w io.Writer, sess *session.Session, path string, nowFn func() time.Time) error {
	data := report.Data{
		Username:    sess.Username(),
		UserID:      sess.UserID(),
		GeneratedAt: nowFn(),
		Entries:     sess.History(),
	}
	if path == "" {
		path = report.DefaultName(data, ".pdf")
	}
	if err := report.Export(path, data); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("history exported to %s", Primary(path))))
	return nil
}
