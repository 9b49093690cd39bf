package models

// DefaultTimerMinutes is the timer duration used when none is configured.
const DefaultTimerMinutes = 90

// Backend names for the category store
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Shortcuts maps the three primary actions to keys
type Shortcuts struct {
	Start string `json:"start"`
	Pause string `json:"pause"`
	Reset string `json:"reset"`
}

// DefaultShortcuts returns the built-in key bindings.
func DefaultShortcuts() Shortcuts {
	return Shortcuts{Start: "s", Pause: "p", Reset: "r"}
}

// Keys bound to fixed actions of the timer screen. Shortcuts may not use
// them.
const (
	KeyMode        = "m"
	KeyNewCategory = "n"
	KeyDelCategory = "x"
	KeyEntry       = "e"
	KeyTimer       = "t"
	KeyStats       = "v"
	KeyLogin       = "l"
	KeyReload      = "R"
	KeyQuit        = "q"
	KeyInterrupt   = "ctrl+c"
)

var reservedKeys = map[string]bool{
	KeyMode: true, KeyNewCategory: true, KeyDelCategory: true, KeyEntry: true,
	KeyTimer: true, KeyStats: true, KeyLogin: true, KeyReload: true,
	KeyQuit: true, KeyInterrupt: true,
}

// IsReservedKey reports whether k is taken by a fixed action.
func IsReservedKey(k string) bool {
	return reservedKeys[k]
}

// Settings holds the persisted user preferences
type Settings struct {
	StartAtStartup bool      `json:"start_at_startup"`
	TimerMinutes   int       `json:"timer_minutes"`
	Shortcuts      Shortcuts `json:"shortcuts"`
	Backend        string    `json:"backend,omitempty"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		TimerMinutes: DefaultTimerMinutes,
		Shortcuts:    DefaultShortcuts(),
		Backend:      BackendJSON,
	}
}

// TimerDurationSeconds is the configured timer duration in seconds.
func (s Settings) TimerDurationSeconds() int {
	return s.TimerMinutes * 60
}

// Normalize replaces missing or invalid values with defaults.
func (s *Settings) Normalize() {
	def := DefaultSettings()
	if s.TimerMinutes <= 0 {
		s.TimerMinutes = def.TimerMinutes
	}
	sc := s.Shortcuts
	if sc.Start == "" || sc.Pause == "" || sc.Reset == "" ||
		sc.Start == sc.Pause || sc.Start == sc.Reset || sc.Pause == sc.Reset ||
		IsReservedKey(sc.Start) || IsReservedKey(sc.Pause) || IsReservedKey(sc.Reset) {
		s.Shortcuts = def.Shortcuts
	}
	if s.Backend != BackendSQLite {
		s.Backend = BackendJSON
	}
}
