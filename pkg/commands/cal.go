package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Show the calendar for a month or week",
		Example: `
tempo cal
tempo cal --mode week
tempo cal --on 2026-02-28 --charts
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			mode, err := vo.Mode()
			if err != nil {
				return err
			}
			svc, err := load()
			if err != nil {
				return err
			}
			s := cal.Cal{
				Mode:    mode,
				On:      vo.On,
				Charts:  vo.Charts,
				Stats:   true,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddChartArgs(cmd, vo)
	topLevel.AddCommand(cmd)
}
