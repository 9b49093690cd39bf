package models

// Mode selects how the clock counts
type Mode int

const (
	ModeStopwatch Mode = iota // count up from zero
	ModeTimer                 // count down from the configured duration
)

func (m Mode) String() string {
	if m == ModeTimer {
		return "timer"
	}
	return "stopwatch"
}

// SessionState is the clock state owned by the session controller
type SessionState struct {
	Mode             Mode `json:"mode"`
	Running          bool `json:"running"`
	ElapsedSeconds   int  `json:"elapsed_seconds"`
	RemainingSeconds int  `json:"remaining_seconds"`
}
