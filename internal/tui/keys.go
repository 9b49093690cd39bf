package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/balkashynov/deepwork/internal/models"
)

// keyMap holds every binding of the timer screen
type keyMap struct {
	Start       key.Binding
	Pause       key.Binding
	Reset       key.Binding
	Mode        key.Binding
	NewCategory key.Binding
	DelCategory key.Binding
	Entry       key.Binding
	Timer       key.Binding
	Stats       key.Binding
	Login       key.Binding
	Reload      key.Binding
	Quit        key.Binding
}

// newKeyMap applies the user's shortcuts to the three primary actions.
func newKeyMap(sc models.Shortcuts) keyMap {
	return keyMap{
		Start:       key.NewBinding(key.WithKeys(sc.Start), key.WithHelp(sc.Start, "start")),
		Pause:       key.NewBinding(key.WithKeys(sc.Pause), key.WithHelp(sc.Pause, "pause")),
		Reset:       key.NewBinding(key.WithKeys(sc.Reset), key.WithHelp(sc.Reset, "reset & save")),
		Mode:        key.NewBinding(key.WithKeys(models.KeyMode), key.WithHelp(models.KeyMode, "mode")),
		NewCategory: key.NewBinding(key.WithKeys(models.KeyNewCategory), key.WithHelp(models.KeyNewCategory, "new category")),
		DelCategory: key.NewBinding(key.WithKeys(models.KeyDelCategory), key.WithHelp(models.KeyDelCategory, "delete category")),
		Entry:       key.NewBinding(key.WithKeys(models.KeyEntry), key.WithHelp(models.KeyEntry, "manual entry")),
		Timer:       key.NewBinding(key.WithKeys(models.KeyTimer), key.WithHelp(models.KeyTimer, "timer length")),
		Stats:       key.NewBinding(key.WithKeys(models.KeyStats), key.WithHelp(models.KeyStats, "statistics")),
		Login:       key.NewBinding(key.WithKeys(models.KeyLogin), key.WithHelp(models.KeyLogin, "start at login")),
		Reload:      key.NewBinding(key.WithKeys(models.KeyReload), key.WithHelp(models.KeyReload, "reload")),
		Quit:        key.NewBinding(key.WithKeys(models.KeyQuit, models.KeyInterrupt), key.WithHelp(models.KeyQuit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Mode, k.Stats, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset, k.Mode},
		{k.NewCategory, k.DelCategory, k.Entry, k.Stats},
		{k.Timer, k.Login, k.Reload, k.Quit},
	}
}
