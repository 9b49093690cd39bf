package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/deepwork/internal/logger"
	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/session"
)

// RunTimerTUI starts the interactive timer until the user quits. Time on a
// running clock that was never reset is not saved.
func RunTimerTUI(ctrl *session.Controller, dialogs *Dialogs, shortcuts models.Shortcuts) error {
	model := NewTimerModel(ctrl, dialogs, shortcuts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if st := ctrl.State(); st.ElapsedSeconds > 0 {
		logger.Info("quit with unsaved time", "seconds", st.ElapsedSeconds, "mode", st.Mode)
	}
	return nil
}
