package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/report"
)

func addStats(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show busiest and freest days for a month or week",
		Example: `
tempo stats
tempo stats --mode week --on 2026-02-28
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
			s := report.Report{
				Mode:    mode,
				On:      vo.On,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddViewArgs(cmd, vo)
	topLevel.AddCommand(cmd)
}
