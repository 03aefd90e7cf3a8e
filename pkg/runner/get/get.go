// Package get lists tasks from the current snapshot, optionally filtered to a
// single day.
package get

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/task"
)

type Get struct {
	ShowID bool
	On     string // "", "today", or a YYYY-MM-DD day
	All    bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	tasks, stale, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	if stale {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("backend unreachable, showing last-known tasks")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.All || n.On == "" {
		sort.SliceStable(tasks, func(i, j int) bool {
			if !tasks[i].Date.Equal(tasks[j].Date) {
				return tasks[i].Date.Before(tasks[j].Date)
			}
			return tasks[i].Start < tasks[j].Start
		})
		pp.TitleWithCount("all tasks", len(tasks))
		pp.TaskList(tasks...)
		return nil
	}

	day, err := n.day()
	if err != nil {
		return err
	}
	bucket := task.BucketsFor(tasks, []datekey.Key{day})[0]
	pp.TitleWithCount(day.String(), bucket.Count())
	pp.TaskList(bucket.Tasks...)
	return nil
}

func (n *Get) day() (datekey.Key, error) {
	if n.On == "today" {
		return n.Service.Today(), nil
	}
	return datekey.Parse(n.On)
}
