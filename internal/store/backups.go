package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BackupInfo describes one backup file
type BackupInfo struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// ListBackups returns backup files in dir, newest first. A missing
// directory means no backups.
func ListBackups(dir string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var backups []BackupInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "data_backup_") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:    filepath.Join(dir, e.Name()),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Path > backups[j].Path
	})
	return backups, nil
}
