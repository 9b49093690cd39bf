// Package login registers the app to start when the user logs in: a
// LaunchAgent plist on macOS, an XDG autostart entry elsewhere.
package login

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/balkashynov/deepwork/internal/logger"
)

const label = "com.deepwork.timer"

const launchAgentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`

const desktopTemplate = `[Desktop Entry]
Type=Application
Name=Deep Work Timer
Exec=%s
Terminal=true
X-GNOME-Autostart-enabled=true
`

// Autostart writes or removes the platform login item
type Autostart struct {
	// Home is the user's home directory.
	Home string
	// Executable is the program started at login.
	Executable string
	// GOOS selects the file format; empty means runtime.GOOS.
	GOOS string
}

// New returns an Autostart for the running executable.
func New() (*Autostart, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("cannot determine executable: %w", err)
	}
	return &Autostart{Home: home, Executable: exe}, nil
}

// Path is the login item file for the target platform.
func (a *Autostart) Path() string {
	if a.goos() == "darwin" {
		return filepath.Join(a.Home, "Library", "LaunchAgents", label+".plist")
	}
	return filepath.Join(a.Home, ".config", "autostart", "deepwork.desktop")
}

// SetRegistered installs the login item when enabled and removes it
// otherwise. Removing an absent item is not an error.
func (a *Autostart) SetRegistered(enabled bool) error {
	path := a.Path()
	if !enabled {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing login item: %w", err)
		}
		logger.Info("login item removed", "path", path)
		return nil
	}

	var content string
	if a.goos() == "darwin" {
		var exe bytes.Buffer
		if err := xml.EscapeText(&exe, []byte(a.Executable)); err != nil {
			return fmt.Errorf("encoding executable path: %w", err)
		}
		content = fmt.Sprintf(launchAgentTemplate, label, exe.String())
	} else {
		content = fmt.Sprintf(desktopTemplate, a.Executable)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating login item directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing login item: %w", err)
	}
	logger.Info("login item registered", "path", path)
	return nil
}

// Registered reports whether the login item file exists.
func (a *Autostart) Registered() bool {
	_, err := os.Stat(a.Path())
	return err == nil
}

func (a *Autostart) goos() string {
	if a.GOOS != "" {
		return a.GOOS
	}
	return runtime.GOOS
}
