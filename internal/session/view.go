package session

import "github.com/balkashynov/deepwork/internal/models"

// View is the render state of the controller, rebuilt on every change
type View struct {
	Display    string
	Mode       models.Mode
	Running    bool
	StartLabel string
	PauseLabel string
	ResetLabel string
	ModeLabel  string
	// ModeToggleEnabled is false while the clock runs.
	ModeToggleEnabled bool
	Categories        []string
	StartAtLogin      bool
	TimerMinutes      int
}

// View derives labels and display from the current state.
func (c *Controller) View() View {
	st := c.clock.State()
	v := View{
		Display:           c.clock.Display(),
		Mode:              st.Mode,
		Running:           st.Running,
		ModeToggleEnabled: !st.Running,
		Categories:        c.store.ListCategories(),
		StartAtLogin:      c.startAtLogin(),
		TimerMinutes:      c.clock.Duration() / 60,
	}
	if st.Mode == ModeTimer {
		v.StartLabel = "Start Timer"
		v.PauseLabel = "Pause Timer"
		v.ResetLabel = "Reset Timer and Save"
		v.ModeLabel = "Switch to Stopwatch"
	} else {
		v.StartLabel = "Start/Resume"
		v.PauseLabel = "Pause"
		v.ResetLabel = "Reset and Save"
		v.ModeLabel = "Switch to Timer"
	}
	return v
}
