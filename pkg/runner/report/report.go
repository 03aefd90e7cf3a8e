// Package report prints the aggregate statistics for a period: totals,
// busiest and freest days, and the per-day distribution charts.
package report

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/task"
	"tableflip.dev/tempo/pkg/view"
)

type Report struct {
	Mode view.Mode
	On   string // "" means today

	Service *app.Service
}

func (n *Report) Do(ctx context.Context) error {
	tasks, stale, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	if stale {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("backend unreachable, reporting on last-known tasks")
	}

	today := n.Service.Today()
	state := view.NewState(today).SwitchMode(n.Mode)
	if n.On != "" {
		ref, err := datekey.Parse(n.On)
		if err != nil {
			return err
		}
		state.Ref = ref
		if n.Mode == view.ModeWeek {
			state = state.SelectCell(ref)
		}
	}

	m := view.Compute(state, tasks, today)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(state.Title())
	pp.Stats(m.Stats)

	buckets := task.BucketsFor(tasks, state.Range())
	pp.CountChart("tasks per day", buckets)
	pp.HoursChart("hours per day", buckets)
	return nil
}
