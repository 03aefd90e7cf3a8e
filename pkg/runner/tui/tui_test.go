package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/task"
	"tableflip.dev/tempo/pkg/view"
)

func testModel(t *testing.T) model {
	t.Helper()
	today := datekey.MustParse("2026-01-15")
	return model{
		ctx:    context.Background(),
		state:  view.NewState(today),
		cursor: today,
		today:  today,
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m model, s string) model {
	t.Helper()
	next, _ := m.Update(key(s))
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestNavigateMonths(t *testing.T) {
	m := testModel(t)

	m = step(t, m, "right")
	if got := m.state.Ref.String(); got != "2026-02-15" {
		t.Fatalf("next month: got %s", got)
	}
	m = step(t, m, "left")
	m = step(t, m, "left")
	if got := m.state.Ref.String(); got != "2025-12-15" {
		t.Fatalf("previous month: got %s", got)
	}
	if !m.cursor.Equal(m.state.Ref) {
		t.Fatalf("cursor should follow period change, got %s", m.cursor)
	}
}

func TestModeSwitchAndToday(t *testing.T) {
	m := testModel(t)

	m = step(t, m, "w")
	if m.state.Mode != view.ModeWeek {
		t.Fatalf("mode: got %s", m.state.Mode)
	}
	if m.state.WeekAnchor == nil || m.state.WeekAnchor.String() != "2026-01-11" {
		t.Fatalf("anchor: got %v", m.state.WeekAnchor)
	}

	m = step(t, m, "right")
	m = step(t, m, "t")
	if got := m.state.Ref.String(); got != "2026-01-15" {
		t.Fatalf("today: got %s", got)
	}
	if m.state.Mode != view.ModeWeek {
		t.Fatalf("today must keep the mode, got %s", m.state.Mode)
	}
	if m.state.WeekAnchor != nil {
		t.Fatalf("today should drop the anchor")
	}
}

func TestSelectCellEntersWeek(t *testing.T) {
	m := testModel(t)
	m.cursor = datekey.MustParse("2026-01-03")

	m = step(t, m, "enter")
	if m.state.Mode != view.ModeWeek {
		t.Fatalf("mode after select: got %s", m.state.Mode)
	}
	if got := m.state.Ref.String(); got != "2026-01-03" {
		t.Fatalf("ref after select: got %s", got)
	}
	if m.state.WeekAnchor == nil || m.state.WeekAnchor.String() != "2025-12-28" {
		t.Fatalf("anchor after select: got %v", m.state.WeekAnchor)
	}
}

func TestCursorPagesAcrossPeriods(t *testing.T) {
	m := testModel(t)
	m.cursor = datekey.MustParse("2026-01-02")

	m = step(t, m, "up") // Dec 26, off the January grid
	if got := m.cursor.String(); got != "2025-12-26" {
		t.Fatalf("cursor: got %s", got)
	}
	if got := m.state.Ref.String(); got != "2025-12-26" {
		t.Fatalf("grid should page to December, ref %s", m.state.Ref)
	}
}

func TestViewRendersSnapshot(t *testing.T) {
	m := testModel(t)

	tasks := []task.Task{
		{ID: "a", Title: "standup", Date: datekey.MustParse("2026-01-15"), Start: "09:00", End: "09:30"},
	}
	next, _ := m.Update(snapshotMsg{model: view.Compute(m.state, tasks, m.today), stale: true})
	m = next.(model)

	out := m.View()
	if !strings.Contains(out, "January 2026") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "offline") {
		t.Fatalf("stale snapshot should surface an offline notice:\n%s", out)
	}
	if !strings.Contains(out, "1 tasks, 0.5 hours") {
		t.Fatalf("missing stats line:\n%s", out)
	}
}
