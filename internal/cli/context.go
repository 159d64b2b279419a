package cli

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/nvquaan/con-bo-cham-chi/internal/config"
	"github.com/nvquaan/con-bo-cham-chi/internal/credential"
	"github.com/nvquaan/con-bo-cham-chi/internal/submission"
	"github.com/spf13/cobra"
)

// appContext is everything a command needs from the environment, resolved
// once per invocation.
type appContext struct {
	homeDir string
	cfg     config.Config
	store   *credential.Store
	logger  *log.Logger
}

func loadAppContext(cmd *cobra.Command) (*appContext, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.Path(homeDir)
	}
	cfg, err := config.Load(homeDir, configPath, os.Getenv)
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	logger.Debug("config loaded", "path", configPath, "base_url", cfg.BaseURL, "history_size", cfg.HistorySize)

	return &appContext{
		homeDir: homeDir,
		cfg:     cfg,
		store:   credential.NewStore(cfg.StorePath),
		logger:  logger,
	}, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "conbo",
		ReportTimestamp: verbose,
	})
}

func (a *appContext) service() *submission.Service {
	opts := []submission.Option{submission.WithLogger(a.logger)}
	if a.cfg.Timeout > 0 {
		opts = append(opts, submission.WithHTTPClient(&http.Client{Timeout: a.cfg.Timeout}))
	}
	return submission.NewService(a.cfg.BaseURL, opts...)
}

// commandContext returns the command's context, or Background when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func stdoutIsTTY() bool {
	return isTerminalWriter(os.Stdout)
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
