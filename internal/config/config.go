package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user support directory.
const AppName = "DeepWorkTimer"

// DirEnv overrides the support directory when set.
const DirEnv = "DEEPWORK_DIR"

// Paths locates every file the app reads or writes
type Paths struct {
	Dir          string
	SettingsFile string
	DataFile     string
	SQLiteFile   string
	BackupDir    string
	LogDir       string
}

// DefaultDir returns the app support directory: ~/Library/Application
// Support/DeepWorkTimer on macOS, $XDG_CONFIG_HOME/DeepWorkTimer elsewhere.
func DefaultDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	if runtime.GOOS == "darwin" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", AppName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Resolve builds the file layout under dir. Debug builds keep their data in
// data_debug.json so they never touch real records.
func Resolve(dir string, debug bool) Paths {
	data, db := "data.json", "data.db"
	if debug {
		data, db = "data_debug.json", "data_debug.db"
	}
	return Paths{
		Dir:          dir,
		SettingsFile: filepath.Join(dir, "settings.json"),
		DataFile:     filepath.Join(dir, data),
		SQLiteFile:   filepath.Join(dir, db),
		BackupDir:    filepath.Join(dir, "backup"),
		LogDir:       filepath.Join(dir, "logs"),
	}
}

// Ensure creates the support directory.
func (p Paths) Ensure() error {
	if err := os.MkdirAll(p.Dir, 0o700); err != nil {
		return fmt.Errorf("creating app directory: %w", err)
	}
	return nil
}
