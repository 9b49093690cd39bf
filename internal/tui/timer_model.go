package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/session"
)

// TimerModel is the full-screen stand-in for the menu bar: clock, action
// menu, categories and statistics. All controller calls happen inside
// Update, so the controller only ever sees the program's event goroutine.
type TimerModel struct {
	width  int
	height int

	ctrl     *session.Controller
	keys     keyMap
	help     help.Model
	feedback *Feedback

	// tickGen invalidates ticks scheduled before the last start
	tickGen   int
	animation int
	showStats bool
}

// timerTickMsg is sent every second while the clock runs
type timerTickMsg struct{ gen int }

// actionDoneMsg is sent when a dialog-driven action returns
type actionDoneMsg struct{ err error }

// NewTimerModel creates the timer model. dialogs is switched to report into
// the status line.
func NewTimerModel(ctrl *session.Controller, dialogs *Dialogs, shortcuts models.Shortcuts) TimerModel {
	fb := &Feedback{}
	dialogs.feedback = fb
	return TimerModel{
		ctrl:     ctrl,
		keys:     newKeyMap(shortcuts),
		help:     help.New(),
		feedback: fb,
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return nil
}

func (m TimerModel) tick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

// action is a controller call run while the terminal is handed to a dialog
type action func() error

func (a action) Run() error         { return a() }
func (a action) SetStdin(io.Reader)  {}
func (a action) SetStdout(io.Writer) {}
func (a action) SetStderr(io.Writer) {}

// withDialog releases the terminal, runs fn and restores the screen.
func withDialog(fn func() error) tea.Cmd {
	return tea.Exec(action(fn), func(err error) tea.Msg {
		return actionDoneMsg{err: err}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.gen != m.tickGen || !m.ctrl.Running() {
			return m, nil
		}
		m.animation = (m.animation + 1) % 4
		if m.ctrl.ExpiresOnNextTick() {
			return m, withDialog(m.ctrl.Tick)
		}
		if err := m.ctrl.Tick(); err != nil {
			m.showError(err)
		}
		return m, m.tick()

	case actionDoneMsg:
		if msg.err != nil {
			m.showError(msg.err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		if m.ctrl.StartOrResume() {
			m.tickGen++
			return m, m.tick()
		}

	case key.Matches(msg, m.keys.Pause):
		m.ctrl.Pause()

	case key.Matches(msg, m.keys.Reset):
		return m, withDialog(m.ctrl.ResetAndSave)

	case key.Matches(msg, m.keys.Mode):
		if err := m.ctrl.ToggleMode(); err != nil {
			m.showError(err)
		}

	case key.Matches(msg, m.keys.NewCategory):
		return m, withDialog(m.ctrl.AddCategory)

	case key.Matches(msg, m.keys.DelCategory):
		return m, withDialog(m.ctrl.DeleteCategory)

	case key.Matches(msg, m.keys.Entry):
		return m, withDialog(m.ctrl.AddEntry)

	case key.Matches(msg, m.keys.Timer):
		return m, withDialog(m.ctrl.PromptTimerMinutes)

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats

	case key.Matches(msg, m.keys.Login):
		if err := m.ctrl.ToggleStartAtLogin(); err == nil {
			state := "off"
			if m.ctrl.View().StartAtLogin {
				state = "on"
			}
			*m.feedback = Feedback{Message: "Start at login " + state + "."}
		}

	case key.Matches(msg, m.keys.Reload):
		_ = m.ctrl.Reload()
	}
	return m, nil
}

// showError puts errors the controller did not alert into the status line.
func (m TimerModel) showError(err error) {
	if session.IsAlerted(err) {
		return
	}
	*m.feedback = Feedback{Title: "Error", Message: err.Error(), Error: true}
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	v := m.ctrl.View()
	helpBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Width(m.width).
		Align(lipgloss.Center).
		Render(m.help.View(m.keys))

	contentHeight := m.height - lipgloss.Height(helpBar) - 1

	// Narrow view: just the clock panel
	if m.width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderTimerPanel(v, m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	var right string
	if m.showStats {
		right = m.renderStatsPanel(rightWidth, contentHeight)
	} else {
		right = m.renderMenuPanel(v, rightWidth, contentHeight)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTimerPanel(v, leftWidth, contentHeight),
		"  ",
		right,
	)
	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderTimerPanel renders the clock, mode and status line
func (m TimerModel) renderTimerPanel(v session.View, width, height int) string {
	var components []string

	header := "DEEP WORK"
	if v.Running {
		animChars := []string{"⏱", "⏲", "⏱", "⏲"}
		a := animChars[m.animation]
		header = fmt.Sprintf("%s  %s  %s", a, header, a)
	}
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(header))

	modeText := strings.ToUpper(v.Mode.String())
	if v.Mode == models.ModeTimer {
		modeText = fmt.Sprintf("%s · %d min", modeText, v.TimerMinutes)
	}
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(modeText))

	clockColor := ColorAccentBright
	if !v.Running {
		clockColor = ColorWarning
	}
	for _, line := range strings.Split(renderBigClock(v.Display, clockColor), "\n") {
		components = append(components, lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(line))
	}

	components = append(components, m.renderFeedback(width))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n"))
}

func (m TimerModel) renderFeedback(width int) string {
	fb := m.feedback
	if fb.Message == "" {
		return ""
	}
	color, icon := ColorSuccess, "✅ "
	if fb.Error {
		color, icon = ColorError, "❌ "
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width).
		Render("\n" + icon + fb.Message)
}

// renderMenuPanel renders the actions with their current labels and the
// category list
func (m TimerModel) renderMenuPanel(v session.View, width, height int) string {
	item := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	disabled := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	section := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Bold(true)

	line := func(b key.Binding, label string, enabled bool) string {
		style := item
		if !enabled {
			style = disabled
		}
		return fmt.Sprintf("%s  %s", keyStyle.Render(fmt.Sprintf("%-6s", b.Help().Key)), style.Render(label))
	}

	var b strings.Builder
	b.WriteString(section.Render("ACTIONS") + "\n\n")
	b.WriteString(line(m.keys.Start, v.StartLabel, !v.Running) + "\n")
	b.WriteString(line(m.keys.Pause, v.PauseLabel, v.Running) + "\n")
	b.WriteString(line(m.keys.Reset, v.ResetLabel, true) + "\n")
	b.WriteString(line(m.keys.Mode, v.ModeLabel, v.ModeToggleEnabled) + "\n\n")

	b.WriteString(section.Render("CATEGORIES") + "\n\n")
	if len(v.Categories) == 0 {
		b.WriteString(disabled.Render("none yet, press n to add one") + "\n")
	}
	for _, name := range v.Categories {
		b.WriteString(item.Render("• "+name) + "\n")
	}
	b.WriteString("\n")

	login := "off"
	if v.StartAtLogin {
		login = "on"
	}
	b.WriteString(section.Render("SETTINGS") + "\n\n")
	b.WriteString(line(m.keys.Login, "Start at login: "+login, true) + "\n")
	b.WriteString(line(m.keys.Timer, fmt.Sprintf("Timer: %d minutes", v.TimerMinutes), true) + "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())
}

// renderStatsPanel renders the aggregated report
func (m TimerModel) renderStatsPanel(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Render(m.ctrl.Statistics().String())
}

// bigDigits is ASCII art for the clock, five rows per glyph
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders an H:MM:SS string in ASCII art
func renderBigClock(display, color string) string {
	var lines [5]strings.Builder
	for _, char := range display {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := range art {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	rows := make([]string, len(lines))
	for i := range lines {
		rows[i] = style.Render(lines[i].String())
	}
	return strings.Join(rows, "\n")
}
