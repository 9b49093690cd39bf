package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/balkashynov/deepwork/internal/logger"
	"github.com/balkashynov/deepwork/internal/models"
)

// JSONBackend keeps the document in a single JSON file
type JSONBackend struct {
	path      string
	backupDir string
}

// NewJSONBackend stores data at path and backups under backupDir.
func NewJSONBackend(path, backupDir string) *JSONBackend {
	return &JSONBackend{path: path, backupDir: backupDir}
}

// Location returns the data file path.
func (b *JSONBackend) Location() string {
	return b.path
}

// Load reads the data file. A missing file yields an empty document.
func (b *JSONBackend) Load() (*models.Document, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", b.path, err)
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("corrupt JSON in %s: %w", b.path, err)
	}
	return doc, nil
}

// Save atomically writes the document: temp file, then rename.
func (b *JSONBackend) Save(doc *models.Document) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := b.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Backup copies the data file byte for byte into the backup directory.
func (b *JSONBackend) Backup(category string, at time.Time) (string, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		// nothing persisted yet, snapshot the empty store
		data, err = json.MarshalIndent(models.NewDocument(), "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("backup: reading %s: %w", b.path, err)
	}

	f, dest, err := CreateBackupFile(b.backupDir, category, at, ".json")
	if err != nil {
		return "", err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("backup: writing %s: %w", dest, err)
	}
	logger.Info("backup written", "path", dest, "category", category)
	return dest, nil
}
