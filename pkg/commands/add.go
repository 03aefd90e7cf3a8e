package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Example: `
tempo add standup --start 09:00 --end 09:30
tempo add deep work --on 2026-02-28 --start 13:00 --end 16:00
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := load()
			if err != nil {
				return err
			}
			s := add.Add{
				Draft:   to.Draft(strings.Join(args, " ")),
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTaskArgs(cmd, to)
	topLevel.AddCommand(cmd)
}
