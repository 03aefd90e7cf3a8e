package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/task"
)

// TaskOptions captures the fields of a task to create.
type TaskOptions struct {
	On    string
	Start string
	End   string
	Desc  string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		`Day for the task, example: --on="2026-02-28". Defaults to today.`)
	cmd.Flags().StringVarP(&o.Start, "start", "s", "",
		"Start time as HH:MM.")
	cmd.Flags().StringVarP(&o.End, "end", "e", "",
		"End time as HH:MM.")
	cmd.Flags().StringVarP(&o.Desc, "desc", "d", "",
		"Optional description.")
}

// Draft builds the create request from the flags and positional title words.
func (o *TaskOptions) Draft(title string) task.Draft {
	return task.Draft{
		Title: title,
		Date:  o.On,
		Start: o.Start,
		End:   o.End,
		Desc:  o.Desc,
	}
}
