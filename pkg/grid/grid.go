// Package grid builds the fixed-size cell sequences behind the month and week
// calendar views. Grids are values: rebuilt on every navigation, never mutated.
package grid

import (
	"tableflip.dev/tempo/pkg/datekey"
)

// Cells per month grid. Six rows keeps the layout height constant even for
// months that would fit in four or five.
const (
	MonthCells = 42
	WeekCells  = 7
	Columns    = 7
	MonthRows  = MonthCells / Columns
)

// Cell is one position in a rendered grid.
type Cell struct {
	Date     datekey.Key
	InPeriod bool
	Today    bool
}

// Month returns the 42-cell grid for the month containing ref. The first cell
// is the Sunday on or before the first of the month, so the grid fully
// contains the month and touches at most the two adjacent months.
func Month(ref, today datekey.Key) []Cell {
	start := ref.MonthStart().WeekStart()
	cells := make([]Cell, MonthCells)
	for i := range cells {
		d := start.AddDays(i)
		cells[i] = Cell{
			Date:     d,
			InPeriod: d.SameMonth(ref),
			Today:    d.Equal(today),
		}
	}
	return cells
}

// Week returns the 7-cell grid for the week containing ref, Sunday first.
// Every cell is in-period.
func Week(ref, today datekey.Key) []Cell {
	start := ref.WeekStart()
	cells := make([]Cell, WeekCells)
	for i := range cells {
		d := start.AddDays(i)
		cells[i] = Cell{
			Date:     d,
			InPeriod: true,
			Today:    d.Equal(today),
		}
	}
	return cells
}

// Rows chunks a month grid into 6 rows of 7 cells for row-oriented rendering
// and week-selection within the month view.
func Rows(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, MonthRows)
	for i := 0; i+Columns <= len(cells); i += Columns {
		rows = append(rows, cells[i:i+Columns])
	}
	return rows
}

// Dates extracts the date keys of the given cells, in order.
func Dates(cells []Cell) []datekey.Key {
	keys := make([]datekey.Key, len(cells))
	for i, c := range cells {
		keys[i] = c.Date
	}
	return keys
}
