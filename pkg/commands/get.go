package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [day]",
		Short: "List tasks, all of them or one day's",
		Example: `
tempo get
tempo get today
tempo get 2026-02-28
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := load()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:  io.ShowID,
				All:     len(args) == 0,
				Service: svc,
			}
			if len(args) > 0 {
				s.On = strings.TrimSpace(args[0])
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
