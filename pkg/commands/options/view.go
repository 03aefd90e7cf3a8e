package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/view"
)

// ViewOptions captures period selection flags for calendar commands.
type ViewOptions struct {
	ModeString string
	On         string
	Charts     bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.ModeString, "mode", "m", "month",
		`Layout, "month" or "week".`)
	cmd.Flags().StringVar(&o.On, "on", "",
		`Day anchoring the period, example: --on="2026-02-28". Defaults to today.`)
}

func AddChartArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.Charts, "charts", false,
		"Include per-day bar charts.")
}

func (o *ViewOptions) Mode() (view.Mode, error) {
	return view.ParseMode(o.ModeString)
}
