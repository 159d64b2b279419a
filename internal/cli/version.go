package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, set from main via ldflags.
var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var versionCmd = LeafCommand{
	Use:   "version",
	Short: "Print the conbo build information",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "short", Usage: "print only the version number"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		_, err := fmt.Fprintln(cmd.OutOrStdout(), versionLine(short))
		return err
	},
}.Build()

func versionLine(short bool) string {
	if short {
		return appVersion
	}
	return fmt.Sprintf("conbo %s (commit: %s, built: %s)", appVersion, appCommit, appDate)
}
