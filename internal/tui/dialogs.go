package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/deepwork/internal/parser"
	"github.com/balkashynov/deepwork/internal/session"
)

// Feedback is the last notification or alert shown in the status line
type Feedback struct {
	Title   string
	Message string
	Error   bool
}

// Dialogs implements session.UI with huh forms. Notifications go to the
// status line when running inside the timer UI, to Out/Err otherwise.
type Dialogs struct {
	Out io.Writer
	Err io.Writer
	Now func() time.Time

	feedback *Feedback
}

// NewDialogs returns dialogs that print feedback to out and errOut.
func NewDialogs(out, errOut io.Writer) *Dialogs {
	return &Dialogs{Out: out, Err: errOut, Now: time.Now}
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true)
)

// SelectCategory shows a dropdown of names, first one preselected.
func (d *Dialogs) SelectCategory(names []string) (string, error) {
	if len(names) == 0 {
		return "", session.ErrNoCategories
	}
	choice := names[0]
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select Category").
			Options(huh.NewOptions(names...)...).
			Value(&choice),
	))
	if err := d.run(form); err != nil {
		return "", err
	}
	return choice, nil
}

// PromptText asks for one line of text.
func (d *Dialogs) PromptText(title, message string) (string, error) {
	var text string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Description(message).
			CharLimit(100).
			Value(&text),
	))
	if err := d.run(form); err != nil {
		return "", err
	}
	return text, nil
}

// PromptDateAndMinutes asks when the work happened and how long it took.
func (d *Dialogs) PromptDateAndMinutes() (time.Time, float64, error) {
	dateText := d.Now().Format("2006-01-02 15:04")
	var minutesText string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Date").
			Description("yyyy-mm-dd hh:mm, dd/mm/yyyy, yesterday, 3 days ago").
			Value(&dateText).
			Validate(func(s string) error {
				_, err := parser.ParseEntryTime(s, d.Now())
				return err
			}),
		huh.NewInput().
			Title("Minutes").
			Placeholder("e.g. 45 or 12.5").
			Value(&minutesText).
			Validate(func(s string) error {
				_, err := parser.ParseMinutes(s)
				return err
			}),
	).Title("Add Manual Entry"))
	if err := d.run(form); err != nil {
		return time.Time{}, 0, err
	}

	ts, err := parser.ParseEntryTime(dateText, d.Now())
	if err != nil {
		return time.Time{}, 0, err
	}
	minutes, err := parser.ParseMinutes(minutesText)
	if err != nil {
		return time.Time{}, 0, err
	}
	return ts, minutes, nil
}

// Notify reports a success.
func (d *Dialogs) Notify(title, message string) {
	if d.feedback != nil {
		*d.feedback = Feedback{Title: title, Message: message}
		return
	}
	fmt.Fprintln(d.Out, successStyle.Render("✅ "+message))
}

// Alert reports a failure.
func (d *Dialogs) Alert(message string) {
	if d.feedback != nil {
		*d.feedback = Feedback{Title: "Error", Message: message, Error: true}
		return
	}
	fmt.Fprintln(d.Err, errorStyle.Render("❌ "+message))
}

func (d *Dialogs) run(form *huh.Form) error {
	err := form.WithTheme(huh.ThemeCharm()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return session.ErrCancelled
	}
	return err
}

var _ session.UI = (*Dialogs)(nil)
