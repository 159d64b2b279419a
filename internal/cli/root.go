package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "conbo",
	Short:         "Submit check-in and check-out attendance events from the terminal",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.conbo/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log request details to stderr")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
