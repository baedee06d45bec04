package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() *model {
	_, cancel := context.WithCancel(context.Background())
	return &model{
		family: "mandelbrot",
		cancel: cancel,
		events: make(chan tea.Msg, 4),
		start:  time.Now(),
		width:  80,
	}
}

func TestProgressUpdate(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(progressMsg{rowsDone: 3, totalRows: 10})
	got := next.(*model)

	if got.rowsDone != 3 || got.totalRows != 10 {
		t.Errorf("progress not recorded: %d/%d", got.rowsDone, got.totalRows)
	}
	if cmd == nil {
		t.Error("expected a follow-up wait command")
	}
}

func TestDoneQuits(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %v", msg)
	}
}

func TestViewShowsProgress(t *testing.T) {
	m := newTestModel()
	m.rowsDone = 5
	m.totalRows = 10

	view := m.View()
	if !strings.Contains(view, "mandelbrot") {
		t.Error("view should name the family")
	}
	if !strings.Contains(view, "50%") {
		t.Errorf("view should show 50%%:\n%s", view)
	}
	if !strings.Contains(view, "5/10") {
		t.Errorf("view should show row counts:\n%s", view)
	}
}
