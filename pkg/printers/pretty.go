// Package printers renders view models to the terminal: the month grid, the
// week table, and the aggregate charts. It consumes (cells, buckets) pairs
// and never recomputes date logic.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/task"
	"tableflip.dev/tempo/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// TaskList prints a flat task table ordered as given.
func (pp *PrettyPrint) TaskList(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "DATE", "TIME", "HOURS", "TITLE")
	} else {
		tbl.AddRow("DATE", "TIME", "HOURS", "TITLE")
	}
	for _, t := range tasks {
		window := fmt.Sprintf("%s-%s", t.Start, t.End)
		hours := fmt.Sprintf("%.1f", t.Duration())
		if pp.ShowID {
			tbl.AddRow(t.ID, t.Date.String(), window, hours, t.Title)
		} else {
			tbl.AddRow(t.Date.String(), window, hours, t.Title)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats prints the aggregate summary for the current range.
func (pp *PrettyPrint) Stats(summary view.Summary) {
	b := color.New(color.FgHiRed)
	f := color.New(color.FgHiGreen)
	p := color.New()

	_, _ = p.Printf("total tasks: %d\n", summary.TotalTasks)
	_, _ = p.Printf("total hours: %.1f\n", summary.TotalHours)

	ex := summary.Extremes
	if len(ex.Busiest) > 0 {
		_, _ = b.Printf("busiest (%d): %s\n", ex.MaxCount, joinKeys(ex.Busiest))
	}
	if len(ex.Freest) > 0 {
		_, _ = f.Printf("freest (%d): %s\n", ex.MinCount, joinKeys(ex.Freest))
	}
	_, _ = p.Println("")
}

func joinKeys(keys []datekey.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}
