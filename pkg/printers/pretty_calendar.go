package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/grid"
	"tableflip.dev/tempo/pkg/task"
	"tableflip.dev/tempo/pkg/view"
)

const weekHeader = "Su  Mo  Tu  We  Th  Fr  Sa"

// Calendar prints the month or week layout for the given model.
func (pp *PrettyPrint) Calendar(m view.Model) {
	pp.Title(m.State.Title())
	if m.State.Mode == view.ModeWeek {
		pp.weekTable(m)
		return
	}
	pp.monthGrid(m)
}

// monthGrid prints the fixed 6x7 layout. Days outside the month are faint,
// today is bold, and days with tasks carry their count.
func (pp *PrettyPrint) monthGrid(m view.Model) {
	h := color.New(color.FgWhite, color.Italic)
	_, _ = h.Println(weekHeader)

	outside := color.New(color.Faint)
	plain := color.New(color.FgHiWhite)
	today := color.New(color.Bold, color.Underline)

	for _, row := range grid.Rows(m.Grid) {
		var marks []string
		for i, cell := range row {
			printer := outside
			if cell.InPeriod {
				printer = plain
			}
			if cell.Today {
				printer = today
			}
			_, _ = printer.Printf("%2d", cell.Date.Day())
			if i < len(row)-1 {
				fmt.Print("  ")
			}

			idx := rowOffset(m, cell)
			if idx >= 0 && m.Buckets[idx].Count() > 0 {
				marks = append(marks, fmt.Sprintf("%s x%d", cell.Date, m.Buckets[idx].Count()))
			}
		}
		fmt.Println("")
		if len(marks) > 0 {
			f := color.New(color.Faint)
			_, _ = f.Printf("    %s\n", strings.Join(marks, "  "))
		}
	}
	fmt.Println("")
}

// weekTable prints one card-like row per day, tasks ordered by start time.
func (pp *PrettyPrint) weekTable(m view.Model) {
	busiest := keySet(m.Stats.Extremes.Busiest)
	freest := keySet(m.Stats.Extremes.Freest)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("DAY", "DATE", "TASKS", "HOURS", "AGENDA")

	for i, cell := range m.Grid {
		bucket := m.Buckets[i]
		name := cell.Date.Weekday().String()[:3]
		if cell.Today {
			name = name + " *"
		}
		label := cell.Date.String()
		switch {
		case busiest[cell.Date]:
			label = label + " (busiest)"
		case freest[cell.Date]:
			label = label + " (freest)"
		}
		tbl.AddRow(name, label, fmt.Sprintf("%d", bucket.Count()),
			fmt.Sprintf("%.1f", bucket.TotalHours), agenda(bucket.Tasks))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func agenda(tasks []task.Task) string {
	if len(tasks) == 0 {
		return "-"
	}
	parts := make([]string, len(tasks))
	for i, t := range tasks {
		parts[i] = fmt.Sprintf("%s-%s %s", t.Start, t.End, t.Title)
	}
	return strings.Join(parts, "; ")
}

func keySet(keys []datekey.Key) map[datekey.Key]bool {
	set := make(map[datekey.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// rowOffset finds the bucket index for a cell; buckets are aligned to the
// grid, so this is a linear scan only to stay robust to partial models.
func rowOffset(m view.Model, cell grid.Cell) int {
	for i := range m.Grid {
		if m.Grid[i].Date.Equal(cell.Date) {
			if i < len(m.Buckets) {
				return i
			}
			return -1
		}
	}
	return -1
}
