package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/balkashynov/deepwork/internal/logger"
	"github.com/balkashynov/deepwork/internal/models"
)

// SettingsStore persists preferences in settings.json, independently of the
// category data.
type SettingsStore struct {
	path     string
	settings models.Settings
}

// OpenSettings loads settings from path. A missing file yields defaults.
func OpenSettings(path string) (*SettingsStore, error) {
	s := &SettingsStore{path: path, settings: models.DefaultSettings()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var loaded models.Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s, fmt.Errorf("parsing settings %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	loaded.Normalize()
	s.settings = loaded
	return s, nil
}

// Get returns a copy of the current settings.
func (s *SettingsStore) Get() models.Settings {
	return s.settings
}

// Update applies fn to a copy of the settings and persists the result.
func (s *SettingsStore) Update(fn func(*models.Settings)) error {
	next := s.settings
	fn(&next)
	next.Normalize()
	s.settings = next
	logger.Info("settings updated", "timer_minutes", next.TimerMinutes, "start_at_startup", next.StartAtStartup, "backend", next.Backend)
	return s.save()
}

func (s *SettingsStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings %s: %w", s.path, err)
	}
	return nil
}
