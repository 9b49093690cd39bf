package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/session"
	"github.com/balkashynov/deepwork/internal/store"
)

func newTestModel(t *testing.T, shortcuts models.Shortcuts) TimerModel {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(store.NewJSONBackend(filepath.Join(dir, "data.json"), filepath.Join(dir, "backup")))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	dialogs := NewDialogs(io.Discard, io.Discard)
	ctrl := session.New(session.Options{Store: st, UI: dialogs})
	return NewTimerModel(ctrl, dialogs, shortcuts)
}

func press(m TimerModel, k string) (TimerModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return next.(TimerModel), cmd
}

func TestStartSchedulesTick(t *testing.T) {
	m := newTestModel(t, models.DefaultShortcuts())

	m, cmd := press(m, "s")
	if !m.ctrl.Running() {
		t.Fatal("expected clock to run after start key")
	}
	if cmd == nil {
		t.Fatal("expected a tick to be scheduled")
	}
	if m.tickGen != 1 {
		t.Errorf("tickGen = %d, want 1", m.tickGen)
	}

	// A second start is ignored and schedules nothing.
	m, cmd = press(m, "s")
	if cmd != nil || m.tickGen != 1 {
		t.Error("start while running should be a no-op")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t, models.DefaultShortcuts())
	m, _ = press(m, "s")

	next, cmd := m.Update(timerTickMsg{gen: 0})
	m = next.(TimerModel)
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if got := m.ctrl.State().ElapsedSeconds; got != 0 {
		t.Errorf("elapsed = %d after stale tick, want 0", got)
	}

	next, cmd = m.Update(timerTickMsg{gen: 1})
	m = next.(TimerModel)
	if cmd == nil {
		t.Error("current tick should reschedule")
	}
	if got := m.ctrl.State().ElapsedSeconds; got != 1 {
		t.Errorf("elapsed = %d, want 1", got)
	}
}

func TestPauseStopsTicking(t *testing.T) {
	m := newTestModel(t, models.DefaultShortcuts())
	m, _ = press(m, "s")
	m, _ = press(m, "p")
	if m.ctrl.Running() {
		t.Fatal("expected clock to stop after pause key")
	}

	next, cmd := m.Update(timerTickMsg{gen: m.tickGen})
	if cmd != nil {
		t.Error("tick after pause should not reschedule")
	}
	if got := next.(TimerModel).ctrl.State().ElapsedSeconds; got != 0 {
		t.Errorf("elapsed = %d, want 0", got)
	}
}

func TestModeToggleRefusedWhileRunning(t *testing.T) {
	m := newTestModel(t, models.DefaultShortcuts())
	m, _ = press(m, "s")
	m, _ = press(m, "m")

	if m.ctrl.State().Mode != models.ModeStopwatch {
		t.Error("mode changed while running")
	}
	if !m.feedback.Error {
		t.Error("expected an error in the status line")
	}
}

func TestCustomShortcuts(t *testing.T) {
	m := newTestModel(t, models.Shortcuts{Start: "a", Pause: "b", Reset: "c"})

	m, _ = press(m, "s")
	if m.ctrl.Running() {
		t.Error("default start key should not be bound")
	}
	m, _ = press(m, "a")
	if !m.ctrl.Running() {
		t.Error("custom start key should start the clock")
	}
	m, _ = press(m, "b")
	if m.ctrl.Running() {
		t.Error("custom pause key should pause the clock")
	}
}

func TestResetRunsThroughDialog(t *testing.T) {
	m := newTestModel(t, models.DefaultShortcuts())
	if _, cmd := press(m, "r"); cmd == nil {
		t.Error("reset should hand the terminal to a dialog")
	}
}

func TestRenderBigClock(t *testing.T) {
	out := renderBigClock("1:02:03", ColorAccentBright)
	if lines := strings.Split(out, "\n"); len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
}

func TestViewShowsLabels(t *testing.T) {
	m := newTestModel(t, models.DefaultShortcuts())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := next.View()
	for _, want := range []string{"Start/Resume", "Reset and Save", "Switch to Timer"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
