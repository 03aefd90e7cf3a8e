// Package view holds calendar navigation state and turns a task snapshot into
// a renderable model. Transitions are pure: each takes a State value and
// returns the next one, so the single mutable instance lives with the caller.
package view

import (
	"fmt"
	"strings"

	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/grid"
	"tableflip.dev/tempo/pkg/stats"
	"tableflip.dev/tempo/pkg/task"
)

// Mode selects the active calendar layout.
type Mode string

const (
	ModeMonth Mode = "month"
	ModeWeek  Mode = "week"
)

// ParseMode converts user input to a Mode.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeMonth, "":
		return ModeMonth, nil
	case ModeWeek:
		return ModeWeek, nil
	}
	return ModeMonth, fmt.Errorf("view: unknown mode %q", raw)
}

// State is the navigation state. WeekAnchor, when set, is always a week-start
// date and is only meaningful in week mode.
type State struct {
	Ref        datekey.Key
	Mode       Mode
	WeekAnchor *datekey.Key
}

// NewState returns the initial state: month view anchored on today.
func NewState(today datekey.Key) State {
	return State{Ref: today, Mode: ModeMonth}
}

// Navigate moves one period in the given direction (-1 or +1): a month in
// month mode, seven days in week mode. Out-of-range arithmetic is normalized
// by the date math, never an error.
func (s State) Navigate(direction int) State {
	switch s.Mode {
	case ModeWeek:
		s.Ref = s.Ref.AddDays(direction * 7)
		s.WeekAnchor = anchorFor(s.Ref)
	default:
		s.Ref = s.Ref.AddMonths(direction)
	}
	return s
}

// GoToday resets the reference date to today and drops the week anchor.
func (s State) GoToday(today datekey.Key) State {
	s.Ref = today
	s.WeekAnchor = nil
	return s
}

// SwitchMode changes the layout. Entering week view without an anchor adopts
// the week containing the reference date; returning to month view clears it.
func (s State) SwitchMode(mode Mode) State {
	s.Mode = mode
	switch mode {
	case ModeWeek:
		if s.WeekAnchor == nil {
			s.WeekAnchor = anchorFor(s.Ref)
		}
	default:
		s.WeekAnchor = nil
	}
	return s
}

// SelectCell handles a click on a calendar cell. In month mode it jumps to
// week view anchored on the clicked day's week; in week mode it re-anchors in
// place. The reference date follows the click in both cases so the grid and
// the anchor always agree.
func (s State) SelectCell(clicked datekey.Key) State {
	s.Ref = clicked
	s.Mode = ModeWeek
	s.WeekAnchor = anchorFor(clicked)
	return s
}

// Grid builds the cell sequence for the current mode.
func (s State) Grid(today datekey.Key) []grid.Cell {
	if s.Mode == ModeWeek {
		return grid.Week(s.Ref, today)
	}
	return grid.Month(s.Ref, today)
}

// Range returns the date keys statistics are computed over: the real days of
// the month (no padding cells) or the seven days of the week.
func (s State) Range() []datekey.Key {
	if s.Mode == ModeWeek {
		return stats.WeekRange(s.Ref)
	}
	return stats.MonthRange(s.Ref)
}

// Title renders the period heading, e.g. "January 2026" or
// "Jan 11 - Jan 17, 2026".
func (s State) Title() string {
	if s.Mode == ModeWeek {
		start := s.Ref.WeekStart()
		end := start.AddDays(6)
		if start.SameMonth(end) {
			return fmt.Sprintf("%s %d - %d, %d", start.Month().String()[:3], start.Day(), end.Day(), start.Year())
		}
		return fmt.Sprintf("%s %d - %s %d, %d", start.Month().String()[:3], start.Day(), end.Month().String()[:3], end.Day(), end.Year())
	}
	return fmt.Sprintf("%s %d", s.Ref.Month(), s.Ref.Year())
}

// Summary bundles the aggregate figures for the current range.
type Summary struct {
	Extremes   stats.Extremes
	TotalTasks int
	TotalHours float64
}

// Model is the rendering-facing view of one state + snapshot pair. Grid and
// Buckets are aligned index-for-index; Stats covers the period range, which
// excludes month-view padding days.
type Model struct {
	State   State
	Grid    []grid.Cell
	Buckets []task.DayBucket
	Stats   Summary
}

// Compute derives the full view model. It is total: a nil or stale snapshot
// degrades to empty buckets, it never fails.
func Compute(s State, tasks []task.Task, today datekey.Key) Model {
	cells := s.Grid(today)
	rangeBuckets := task.BucketsFor(tasks, s.Range())
	total := 0
	for _, b := range rangeBuckets {
		total += b.Count()
	}
	return Model{
		State:   s,
		Grid:    cells,
		Buckets: task.BucketsFor(tasks, grid.Dates(cells)),
		Stats: Summary{
			Extremes:   stats.BusiestAndFreest(rangeBuckets),
			TotalTasks: total,
			TotalHours: stats.TotalHours(rangeBuckets),
		},
	}
}

func anchorFor(k datekey.Key) *datekey.Key {
	ws := k.WeekStart()
	return &ws
}
