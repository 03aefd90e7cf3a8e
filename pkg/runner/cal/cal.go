// Package cal renders the calendar for a period: the month grid or the week
// table, with the aggregate stats and optional charts underneath.
package cal

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

type Cal struct {
	Mode   view.Mode
	On     string // "" means today
	Charts bool
	Stats  bool

	Service *app.Service
}

func (n *Cal) Do(ctx context.Context) error {
	tasks, stale, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	if stale {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("backend unreachable, showing last-known tasks")
	}

	today := n.Service.Today()
	ref := today
	if n.On != "" {
		if ref, err = datekey.Parse(n.On); err != nil {
			return err
		}
	}

	state := view.NewState(today).SwitchMode(n.Mode)
	state.Ref = ref
	if n.Mode == view.ModeWeek {
		state = state.SelectCell(ref)
	}

	m := view.Compute(state, tasks, today)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(m)

	if n.Stats {
		pp.Stats(m.Stats)
	}
	if n.Charts {
		buckets := task.BucketsFor(tasks, state.Range())
		pp.CountChart("tasks per day", buckets)
		if n.Mode == view.ModeWeek {
			pp.HoursChart("hours per day", buckets)
		}
	}
	return nil
}
