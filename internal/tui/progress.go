// Package tui drives long compute passes interactively: a Bubble Tea
// progress view with cancellation, handing the finished plane back to the
// caller.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
	"github.com/fractalab/fractalab/internal/plane"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	barDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	barRest    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type progressMsg struct {
	rowsDone  int
	totalRows int
}

type doneMsg struct {
	ip  *plane.IterPlane
	err error
}

type model struct {
	family string
	cancel context.CancelFunc
	events chan tea.Msg

	rowsDone  int
	totalRows int
	start     time.Time

	result *plane.IterPlane
	err    error
	width  int
}

func (m *model) waitForEvent() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

func (m *model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancel()
			return m, nil // the compute goroutine still delivers doneMsg
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case progressMsg:
		m.rowsDone = msg.rowsDone
		m.totalRows = msg.totalRows
		return m, m.waitForEvent()
	case doneMsg:
		m.result = msg.ip
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("computing "+m.family) + "\n\n")

	barWidth := m.width - 20
	if barWidth < 10 {
		barWidth = 40
	}
	frac := 0.0
	if m.totalRows > 0 {
		frac = float64(m.rowsDone) / float64(m.totalRows)
	}
	filled := int(frac * float64(barWidth))
	b.WriteString(barDone.Render(strings.Repeat("█", filled)))
	b.WriteString(barRest.Render(strings.Repeat("░", barWidth-filled)))
	b.WriteString(fmt.Sprintf(" %3.0f%%\n\n", 100*frac))

	b.WriteString(dimStyle.Render(fmt.Sprintf("rows %d/%d  elapsed %s  q to cancel",
		m.rowsDone, m.totalRows, time.Since(m.start).Round(time.Millisecond))))
	b.WriteString("\n")
	return b.String()
}

// Run computes a plane under a live progress view. The options' Progress
// hook is replaced; pressing q cancels the pass and returns the context
// error along with the partially filled plane.
func Run(family string, fam dynamics.Family, g grid.PointGrid, opts plane.Options) (*plane.IterPlane, error) {
	events := make(chan tea.Msg, 64)
	opts.Progress = func(rowsDone, totalRows int) {
		select {
		case events <- progressMsg{rowsDone: rowsDone, totalRows: totalRows}:
		default:
		}
	}

	computer, err := plane.New(fam, g, opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := &model{
		family: family,
		cancel: cancel,
		events: events,
		start:  time.Now(),
		width:  80,
	}

	go func() {
		ip, err := computer.Compute(ctx)
		events <- doneMsg{ip: ip, err: err}
	}()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		cancel()
		return nil, err
	}
	return m.result, m.err
}
