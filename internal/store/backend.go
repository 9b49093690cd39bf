package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/deepwork/internal/models"
)

// Backend persists the whole category document
type Backend interface {
	// Load returns the persisted document, or an empty one when nothing
	// has been saved yet.
	Load() (*models.Document, error)
	// Save replaces the persisted document.
	Save(doc *models.Document) error
	// Backup snapshots the persisted document before a destructive change
	// and returns the snapshot path.
	Backup(category string, at time.Time) (string, error)
	// Location describes where the data lives.
	Location() string
}

var unsafeChars = regexp.MustCompile(`[^\pL\pN._-]+`)

// BackupName returns data_backup_<YYYY-MM-DD_HH-MM-SS>_<category><ext>.
// Characters that are unsafe in file names are replaced by underscores.
func BackupName(category string, at time.Time, ext string) string {
	return fmt.Sprintf("data_backup_%s_%s%s",
		at.Format("2006-01-02_15-04-05"),
		unsafeChars.ReplaceAllString(category, "_"),
		ext)
}

// maxBackupSuffix bounds the search for a free name within one second.
const maxBackupSuffix = 100

// CreateBackupFile creates a new, empty backup file in dir and returns it
// open for writing. Existing snapshots are never overwritten: a name taken
// in the same second gets a numeric suffix.
func CreateBackupFile(dir, category string, at time.Time, ext string) (*os.File, string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", fmt.Errorf("backup: creating directory: %w", err)
	}
	base := strings.TrimSuffix(BackupName(category, at, ext), ext)
	for n := 0; n < maxBackupSuffix; n++ {
		name := base + ext
		if n > 0 {
			name = fmt.Sprintf("%s_%d%s", base, n, ext)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("backup: creating %s: %w", path, err)
		}
		return f, path, nil
	}
	return nil, "", fmt.Errorf("backup: no free name for %s%s", base, ext)
}
