package session

import (
	"fmt"

	"github.com/balkashynov/deepwork/internal/models"
)

// FormatTime renders seconds as H:MM:SS with unpadded hours.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
}

// Clock is the accumulator advanced once per second while running. The
// stopwatch counts elapsed seconds up; the timer counts remaining seconds
// down from duration.
type Clock struct {
	state    models.SessionState
	duration int
}

// NewClock returns a stopped stopwatch with the given timer duration.
func NewClock(durationSeconds int) *Clock {
	c := &Clock{duration: durationSeconds}
	c.Reset()
	return c
}

// State returns a copy of the clock state.
func (c *Clock) State() models.SessionState {
	return c.state
}

// Duration is the configured timer duration in seconds.
func (c *Clock) Duration() int {
	return c.duration
}

// SetDuration changes the timer duration. A stopped timer rearms at the
// new duration; a running one keeps counting.
func (c *Clock) SetDuration(seconds int) {
	c.duration = seconds
	if c.state.Mode == ModeTimer && !c.state.Running {
		c.state.RemainingSeconds = seconds
	}
}

// Mode aliases so callers need not import models for the common case
const (
	ModeStopwatch = models.ModeStopwatch
	ModeTimer     = models.ModeTimer
)

// Tick advances the clock by one second. It reports true when the timer
// has just reached zero.
func (c *Clock) Tick() bool {
	if !c.state.Running {
		return false
	}
	if c.state.Mode == ModeStopwatch {
		c.state.ElapsedSeconds++
		return false
	}
	if c.state.RemainingSeconds > 0 {
		c.state.RemainingSeconds--
	}
	return c.state.RemainingSeconds == 0
}

// Expiring reports whether the next tick ends the timer.
func (c *Clock) Expiring() bool {
	return c.state.Running && c.state.Mode == ModeTimer && c.state.RemainingSeconds <= 1
}

// Elapsed is the duration accumulated so far in seconds.
func (c *Clock) Elapsed() int {
	if c.state.Mode == ModeTimer {
		return c.duration - c.state.RemainingSeconds
	}
	return c.state.ElapsedSeconds
}

// Display is the current accumulator formatted as H:MM:SS.
func (c *Clock) Display() string {
	if c.state.Mode == ModeTimer {
		return FormatTime(c.state.RemainingSeconds)
	}
	return FormatTime(c.state.ElapsedSeconds)
}

func (c *Clock) start() { c.state.Running = true }
func (c *Clock) stop()  { c.state.Running = false }

// Reset stops the clock and zeroes the stopwatch or rearms the timer.
func (c *Clock) Reset() {
	c.state.Running = false
	c.state.ElapsedSeconds = 0
	c.state.RemainingSeconds = c.duration
}

// toggleMode flips stopwatch and timer and resets the accumulator.
func (c *Clock) toggleMode() {
	if c.state.Mode == ModeTimer {
		c.state.Mode = ModeStopwatch
	} else {
		c.state.Mode = ModeTimer
	}
	c.Reset()
}
