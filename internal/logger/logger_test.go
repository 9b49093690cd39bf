package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpersBeforeInit(t *testing.T) {
	Logger = nil
	// must not panic
	Debug("debug")
	Info("info", "k", 1)
	Warn("warn")
	Error("error")
}

func TestInitWritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(Config{LogDir: dir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Info("hello", "category", "Writing")

	data, err := os.ReadFile(filepath.Join(dir, "deepwork.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestDebugConsoleIsOptional(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	var console bytes.Buffer
	if err := Init(Config{Debug: true, LogDir: t.TempDir(), Console: &console}); err != nil {
		t.Fatal(err)
	}
	Debug("to console")
	if !strings.Contains(console.String(), "to console") {
		t.Errorf("console output = %q", console.String())
	}

	// interactive runs keep debug output in the file only
	dir := t.TempDir()
	if err := Init(Config{Debug: true, LogDir: dir}); err != nil {
		t.Fatal(err)
	}
	Debug("file only")
	data, err := os.ReadFile(filepath.Join(dir, "deepwork.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "file only") {
		t.Errorf("debug line missing from log file:\n%s", data)
	}
}
