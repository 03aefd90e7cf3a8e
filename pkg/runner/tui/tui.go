// Package tui is the interactive calendar: one Bubble Tea model owning the
// navigation state, re-rendered from the task snapshot on every change.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/view"
)

type UI struct {
	Service *app.Service
}

func (n *UI) Do(ctx context.Context) error {
	if err := n.Service.RequireSession(); err != nil {
		return err
	}
	p := tea.NewProgram(newModel(ctx, n.Service), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	headerStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.Color("7"))

	dayStyle     = lipgloss.NewStyle()
	outsideStyle = lipgloss.NewStyle().Faint(true)
	todayStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	cursorStyle  = lipgloss.NewStyle().Underline(true)
	busiestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	freestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	markStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	statusStyle = lipgloss.NewStyle().Faint(true)
)

type snapshotMsg struct {
	model view.Model
	stale bool
	err   error
}

type model struct {
	ctx context.Context
	svc *app.Service

	state  view.State
	cursor datekey.Key
	today  datekey.Key

	vm    view.Model
	stale bool
	err   error

	loaded bool
}

func newModel(ctx context.Context, svc *app.Service) model {
	today := svc.Today()
	return model{
		ctx:    ctx,
		svc:    svc,
		state:  view.NewState(today),
		cursor: today,
		today:  today,
	}
}

func (m model) Init() tea.Cmd {
	return m.refresh(m.state)
}

// refresh recomputes the view model off-thread so fetch latency never blocks
// key handling.
func (m model) refresh(s view.State) tea.Cmd {
	ctx, svc, today := m.ctx, m.svc, m.today
	return func() tea.Msg {
		tasks, stale, err := svc.Tasks(ctx)
		if err != nil {
			return snapshotMsg{err: err}
		}
		return snapshotMsg{model: view.Compute(s, tasks, today), stale: stale}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.vm = msg.model
		m.stale = msg.stale
		m.err = nil
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			return m.transition(m.state.Navigate(-1), m.state.Ref)
		case "right", "l":
			return m.transition(m.state.Navigate(+1), m.state.Ref)
		case "up", "k":
			return m.moveCursor(-7)
		case "down", "j":
			return m.moveCursor(+7)
		case "shift+left":
			return m.moveCursor(-1)
		case "shift+right":
			return m.moveCursor(+1)
		case "t":
			return m.transition(m.state.GoToday(m.today), m.today)
		case "m":
			return m.transition(m.state.SwitchMode(view.ModeMonth), m.cursor)
		case "w":
			return m.transition(m.state.SwitchMode(view.ModeWeek), m.cursor)
		case "enter":
			return m.transition(m.state.SelectCell(m.cursor), m.cursor)
		case "r":
			return m, m.refresh(m.state)
		}
	}
	return m, nil
}

// transition applies the next navigation state and recomputes. The cursor
// follows the reference date whenever the period changed under it.
func (m model) transition(next view.State, cursor datekey.Key) (tea.Model, tea.Cmd) {
	m.state = next
	m.cursor = cursor
	if !visible(next, cursor) {
		m.cursor = next.Ref
	}
	return m, m.refresh(next)
}

func (m model) moveCursor(days int) (tea.Model, tea.Cmd) {
	moved := m.cursor.AddDays(days)
	if visible(m.state, moved) {
		m.cursor = moved
		return m, nil
	}
	// Walking off the grid pages to the adjacent period.
	next := m.state.Navigate(direction(days))
	next.Ref = moved
	if next.Mode == view.ModeWeek {
		next = next.SelectCell(moved)
	}
	return m.transition(next, moved)
}

func direction(days int) int {
	if days < 0 {
		return -1
	}
	return +1
}

func visible(s view.State, k datekey.Key) bool {
	if s.Mode == view.ModeWeek {
		start := s.Ref.WeekStart()
		return !k.Before(start) && !start.AddDays(6).Before(k)
	}
	return s.Ref.SameMonth(k)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.state.Title()))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(statusStyle.Render("loading tasks..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.state.Mode == view.ModeWeek {
		m.renderWeek(&b)
	} else {
		m.renderMonth(&b)
	}

	b.WriteString("\n")
	m.renderStats(&b)

	switch {
	case m.err != nil:
		b.WriteString(statusStyle.Render(fmt.Sprintf("error: %v", m.err)))
	case m.stale:
		b.WriteString(statusStyle.Render("offline, showing last-known tasks"))
	default:
		b.WriteString(statusStyle.Render(
			"arrows navigate  t today  m/w mode  enter select  r refresh  q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) renderMonth(b *strings.Builder) {
	b.WriteString(headerStyle.Render("  Su    Mo    Tu    We    Th    Fr    Sa"))
	b.WriteString("\n")

	for i, cell := range m.vm.Grid {
		style := outsideStyle
		if cell.InPeriod {
			style = dayStyle
		}
		if cell.Today {
			style = todayStyle
		}
		if cell.Date.Equal(m.cursor) {
			style = style.Underline(true).Bold(true)
		}

		mark := " "
		if i < len(m.vm.Buckets) && m.vm.Buckets[i].Count() > 0 {
			mark = markStyle.Render("•")
		}
		b.WriteString(fmt.Sprintf(" %s %s ", style.Render(fmt.Sprintf("%3d", cell.Date.Day())), mark))

		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
}

func (m model) renderWeek(b *strings.Builder) {
	busiest := keySet(m.vm.Stats.Extremes.Busiest)
	freest := keySet(m.vm.Stats.Extremes.Freest)

	for i, cell := range m.vm.Grid {
		bucket := m.vm.Buckets[i]

		label := fmt.Sprintf("%s %s", cell.Date.Weekday().String()[:3], cell.Date)
		style := dayStyle
		switch {
		case busiest[cell.Date.String()]:
			style = busiestStyle
		case freest[cell.Date.String()]:
			style = freestStyle
		}
		if cell.Today {
			label = "* " + label
		} else {
			label = "  " + label
		}
		if cell.Date.Equal(m.cursor) {
			style = cursorStyle.Inherit(style)
		}
		b.WriteString(style.Render(fmt.Sprintf("%-16s", label)))
		b.WriteString(fmt.Sprintf(" %d tasks  %.1fh", bucket.Count(), bucket.TotalHours))

		for _, t := range bucket.Tasks {
			b.WriteString(fmt.Sprintf("\n      %s-%s  %s", t.Start, t.End, t.Title))
		}
		b.WriteString("\n")
	}
}

func (m model) renderStats(b *strings.Builder) {
	s := m.vm.Stats
	b.WriteString(fmt.Sprintf("%d tasks, %.1f hours", s.TotalTasks, s.TotalHours))
	if len(s.Extremes.Busiest) > 0 {
		b.WriteString(busiestStyle.Render(fmt.Sprintf("  busiest: %s", joinKeys(s.Extremes.Busiest))))
	}
	if len(s.Extremes.Freest) > 0 {
		b.WriteString(freestStyle.Render(fmt.Sprintf("  freest: %s", joinKeys(s.Extremes.Freest))))
	}
	b.WriteString("\n\n")
}

func keySet(keys []datekey.Key) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k.String()] = true
	}
	return set
}

func joinKeys(keys []datekey.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}
