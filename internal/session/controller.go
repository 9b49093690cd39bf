package session

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/balkashynov/deepwork/internal/logger"
	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/parser"
	"github.com/balkashynov/deepwork/internal/stats"
	"github.com/balkashynov/deepwork/internal/store"
)

const notifyTitle = "Deep Work Timer"

// Options wires a Controller to its collaborators
type Options struct {
	Store *store.CategoryStore
	UI    UI

	// Settings may be nil; the timer then keeps TimerDuration.
	Settings *store.SettingsStore
	// Login may be nil; toggling start-at-login then only saves the flag.
	Login LoginItems

	// TimerDuration overrides the configured timer duration when non-zero.
	TimerDuration time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Controller orchestrates start, pause, reset and commits. It is not safe
// for concurrent use: every call must come from the single UI goroutine.
type Controller struct {
	clock    *Clock
	store    *store.CategoryStore
	settings *store.SettingsStore
	ui       UI
	login    LoginItems
	now      func() time.Time
}

// New builds a stopped stopwatch controller.
func New(opts Options) *Controller {
	duration := models.DefaultTimerMinutes * 60
	if opts.Settings != nil {
		duration = opts.Settings.Get().TimerDurationSeconds()
	}
	if opts.TimerDuration > 0 {
		duration = int(opts.TimerDuration / time.Second)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		clock:    NewClock(duration),
		store:    opts.Store,
		settings: opts.Settings,
		ui:       opts.UI,
		login:    opts.Login,
		now:      now,
	}
}

// State returns the clock state.
func (c *Controller) State() models.SessionState {
	return c.clock.State()
}

// Running reports whether the clock is ticking.
func (c *Controller) Running() bool {
	return c.clock.State().Running
}

// StartOrResume starts the clock. It reports false when already running.
func (c *Controller) StartOrResume() bool {
	if c.Running() {
		return false
	}
	c.clock.start()
	logger.Debug("clock started", "mode", c.clock.State().Mode)
	return true
}

// Pause stops the clock without committing. It reports false when the
// clock was not running.
func (c *Controller) Pause() bool {
	if !c.Running() {
		return false
	}
	c.clock.stop()
	logger.Debug("clock paused", "display", c.clock.Display())
	return true
}

// ResetAndSave stops the clock, asks for a category and commits the elapsed
// time, then resets the accumulator whether or not anything was saved. A
// zero duration is still offered for saving.
func (c *Controller) ResetAndSave() error {
	c.clock.stop()
	err := c.commit(c.clock.Elapsed())
	c.clock.Reset()
	return err
}

// Tick advances the clock by one second. When the timer reaches zero the
// full duration is committed without user action and the timer rearms,
// stopped.
func (c *Controller) Tick() error {
	if !c.clock.Tick() {
		return nil
	}
	c.clock.stop()
	logger.Info("timer finished", "seconds", c.clock.Duration())
	err := c.commit(c.clock.Duration())
	c.clock.Reset()
	return err
}

// ExpiresOnNextTick reports whether the next Tick will open the commit
// dialog, so the scheduler can hand the terminal over first.
func (c *Controller) ExpiresOnNextTick() bool {
	return c.clock.Expiring()
}

// ToggleMode flips stopwatch and timer. It refuses while running.
func (c *Controller) ToggleMode() error {
	if c.Running() {
		return ErrRunning
	}
	c.clock.toggleMode()
	logger.Debug("mode switched", "mode", c.clock.State().Mode)
	return nil
}

// AddManualEntry records minutes of work at ts without touching the clock.
func (c *Controller) AddManualEntry(category string, ts time.Time, minutes float64) error {
	if !(minutes > 0) || math.IsInf(minutes, 1) {
		return c.alert(ErrInvalidMinutes)
	}
	if !c.store.Has(category) {
		return c.alert(fmt.Errorf("%w: %q", store.ErrCategoryNotFound, category))
	}
	if err := c.store.Append(category, models.NewTimeEntry(ts, minutes)); err != nil {
		return c.alert(fmt.Errorf("failed to save entry: %w", err))
	}
	return nil
}

// AddEntry asks for a date, a duration and a category, then records a
// manual entry.
func (c *Controller) AddEntry() error {
	if c.store.Empty() {
		return c.alert(ErrNoCategories)
	}
	ts, minutes, err := c.ui.PromptDateAndMinutes()
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return c.alert(err)
	}
	name, err := c.ui.SelectCategory(c.store.ListCategories())
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return c.alert(err)
	}
	return c.AddManualEntry(name, ts, minutes)
}

// AddCategory asks for a name and creates the category.
func (c *Controller) AddCategory() error {
	name, err := c.ui.PromptText("New Category", "Enter the name of the new category:")
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return c.alert(err)
	}
	name = strings.TrimSpace(name)
	if err := c.store.AddCategory(name); err != nil {
		return c.alert(err)
	}
	c.ui.Notify(notifyTitle, fmt.Sprintf("Category '%s' added.", name))
	return nil
}

// DeleteCategory asks which category to remove, backs up the store and
// deletes it.
func (c *Controller) DeleteCategory() error {
	if c.store.Empty() {
		return c.alert(ErrNoCategories)
	}
	name, err := c.ui.SelectCategory(c.store.ListCategories())
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return c.alert(err)
	}
	if !c.store.Has(name) {
		return c.alert(fmt.Errorf("%w: %q", store.ErrCategoryNotFound, name))
	}
	backup, err := c.store.DeleteCategory(name)
	if err != nil {
		return c.alert(fmt.Errorf("failed to delete category: %w", err))
	}
	c.ui.Notify(notifyTitle, fmt.Sprintf("Category '%s' deleted. Backup: %s", name, backup))
	return nil
}

// Reload re-reads the category store from disk.
func (c *Controller) Reload() error {
	if err := c.store.Reload(); err != nil {
		return c.alert(fmt.Errorf("failed to reload data: %w", err))
	}
	c.ui.Notify(notifyTitle, "Data reloaded.")
	return nil
}

// Statistics aggregates the store relative to now.
func (c *Controller) Statistics() stats.Statistics {
	return stats.Compute(c.store.Categories(), c.now())
}

// SetTimerMinutes changes and persists the timer duration.
func (c *Controller) SetTimerMinutes(minutes int) error {
	if minutes <= 0 {
		return c.alert(errors.New("timer duration must be a positive number of minutes"))
	}
	if c.settings != nil {
		if err := c.settings.Update(func(s *models.Settings) { s.TimerMinutes = minutes }); err != nil {
			return c.alert(err)
		}
	}
	c.clock.SetDuration(minutes * 60)
	return nil
}

// PromptTimerMinutes asks for a new timer duration.
func (c *Controller) PromptTimerMinutes() error {
	text, err := c.ui.PromptText("Timer Duration", "Enter the timer duration in minutes:")
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return c.alert(err)
	}
	minutes, err := parser.ParseTimerMinutes(text)
	if err != nil {
		return c.alert(err)
	}
	if err := c.SetTimerMinutes(minutes); err != nil {
		return err
	}
	c.ui.Notify(notifyTitle, fmt.Sprintf("Timer set to %d minutes.", minutes))
	return nil
}

// SetStartAtLogin registers or removes the login item and saves the flag.
func (c *Controller) SetStartAtLogin(enabled bool) error {
	if c.login != nil {
		if err := c.login.SetRegistered(enabled); err != nil {
			return c.alert(err)
		}
	}
	if c.settings != nil {
		if err := c.settings.Update(func(s *models.Settings) { s.StartAtStartup = enabled }); err != nil {
			return c.alert(err)
		}
	}
	return nil
}

// SyncStartAtLogin makes the saved flag follow the login item actually
// installed, which may have been added or removed outside the app.
func (c *Controller) SyncStartAtLogin() error {
	if c.login == nil || c.settings == nil {
		return nil
	}
	registered := c.login.Registered()
	if registered == c.startAtLogin() {
		return nil
	}
	logger.Info("start at login out of sync", "saved", c.startAtLogin(), "registered", registered)
	return c.settings.Update(func(s *models.Settings) { s.StartAtStartup = registered })
}

// ToggleStartAtLogin flips the start-at-login setting.
func (c *Controller) ToggleStartAtLogin() error {
	return c.SetStartAtLogin(!c.startAtLogin())
}

func (c *Controller) startAtLogin() bool {
	return c.settings != nil && c.settings.Get().StartAtStartup
}

// commit asks for a category and appends seconds of work to it.
func (c *Controller) commit(seconds int) error {
	if c.store.Empty() {
		return c.alert(ErrNoCategories)
	}
	name, err := c.ui.SelectCategory(c.store.ListCategories())
	if errors.Is(err, ErrCancelled) {
		logger.Debug("commit cancelled", "seconds", seconds)
		return nil
	}
	if err != nil {
		return c.alert(err)
	}
	if !c.store.Has(name) {
		return c.alert(fmt.Errorf("%w: %q", store.ErrCategoryNotFound, name))
	}
	if err := c.store.Append(name, models.EntryFromSeconds(c.now(), seconds)); err != nil {
		return c.alert(fmt.Errorf("failed to save time: %w", err))
	}
	c.ui.Notify(notifyTitle, fmt.Sprintf("Time saved under '%s'.", name))
	return nil
}

func (c *Controller) alert(err error) error {
	c.ui.Alert(err.Error())
	return &Alerted{Err: err}
}
