package session

import (
	"errors"
	"time"
)

var (
	// ErrCancelled is returned by a UI when the user dismisses a dialog.
	ErrCancelled = errors.New("cancelled")

	ErrNoCategories   = errors.New("no categories exist, add a category first")
	ErrInvalidMinutes = errors.New("minutes must be greater than zero")
	ErrRunning        = errors.New("cannot switch mode while running")
)

// UI is the front end the controller talks to. Dialog calls block until
// the user answers and return ErrCancelled when dismissed.
type UI interface {
	SelectCategory(names []string) (string, error)
	PromptText(title, message string) (string, error)
	PromptDateAndMinutes() (time.Time, float64, error)
	Notify(title, message string)
	Alert(message string)
}

// LoginItems registers the app to start at login
type LoginItems interface {
	SetRegistered(enabled bool) error
	Registered() bool
}

// Alerted wraps an error the controller already showed through UI.Alert.
type Alerted struct {
	Err error
}

func (e *Alerted) Error() string { return e.Err.Error() }
func (e *Alerted) Unwrap() error { return e.Err }

// IsAlerted reports whether err was already shown to the user.
func IsAlerted(err error) bool {
	var a *Alerted
	return errors.As(err, &a)
}
