package cli

import (
	"fmt"

	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/spf13/cobra"
)

var sampleCmd = LeafCommand{
	Use:   "sample",
	Short: "Print candidate check-in and check-out times",
	StrFlags: []StringFlag{
		{Name: "kind", Shorthand: "k", Usage: "only sample this kind: in or out"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		kindFlag, _ := cmd.Flags().GetString("kind")
		return runSample(cmd, kindFlag, attendance.DefaultSource)
	},
}.Build()

func runSample(cmd *cobra.Command, kindFlag string, src attendance.Source) error {
	kinds := []attendance.EventKind{attendance.CheckIn, attendance.CheckOut}
	if kindFlag != "" {
		kind, err := attendance.ParseEventKind(kindFlag)
		if err != nil {
			return err
		}
		kinds = []attendance.EventKind{kind}
	}

	w := cmd.OutOrStdout()
	for _, kind := range kinds {
		from, to := attendance.Window(kind)
		_, _ = fmt.Fprintf(w, "%-9s  %s  %s\n",
			kind.Label(),
			Primary(attendance.Sample(kind, src)),
			Silent(fmt.Sprintf("(%s–%s)", from, to)),
		)
	}
	return nil
}
