package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/store"
)

func TestOpenSettingsDefaults(t *testing.T) {
	s, err := store.OpenSettings(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	got := s.Get()
	if got.TimerMinutes != 90 || got.TimerDurationSeconds() != 5400 {
		t.Errorf("default timer = %d min, want 90", got.TimerMinutes)
	}
	if got.StartAtStartup {
		t.Error("start_at_startup should default to false")
	}
	if got.Shortcuts != models.DefaultShortcuts() {
		t.Errorf("shortcuts = %+v", got.Shortcuts)
	}
}

func TestSettingsUpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := store.OpenSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Update(func(st *models.Settings) {
		st.StartAtStartup = true
		st.TimerMinutes = 25
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reopened, err := store.OpenSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	got := reopened.Get()
	if !got.StartAtStartup || got.TimerMinutes != 25 {
		t.Errorf("reloaded settings = %+v", got)
	}
}

func TestOpenSettingsLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	// earliest revision: no timer field, extra keys
	legacy := `{"start_at_startup": true, "file_location": "/x.xlsx"}`
	if err := os.WriteFile(path, []byte(legacy), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := store.OpenSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	got := s.Get()
	if !got.StartAtStartup || got.TimerMinutes != models.DefaultTimerMinutes || got.Backend != models.BackendJSON {
		t.Errorf("legacy settings = %+v", got)
	}
}

func TestOpenSettingsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := store.OpenSettings(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if s.Get().TimerMinutes != models.DefaultTimerMinutes {
		t.Error("defaults should still be usable after a parse error")
	}
}

func TestOpenSettingsRejectsReservedShortcuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	// "q" would be swallowed by quit
	edited := `{"timer_minutes": 30, "shortcuts": {"start": "q", "pause": "p", "reset": "r"}}`
	if err := os.WriteFile(path, []byte(edited), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := store.OpenSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Get().Shortcuts; got != models.DefaultShortcuts() {
		t.Errorf("shortcuts = %+v, want defaults", got)
	}
}
