package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/deepwork/internal/models"
)

// SQLiteBackend persists the category document in a SQLite database. It
// satisfies store.Backend.
type SQLiteBackend struct {
	db        *gorm.DB
	path      string
	backupDir string
}

// Open sets up the database connection and runs migrations
func Open(dbPath, backupDir string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	b := &SQLiteBackend{db: db, path: dbPath, backupDir: backupDir}
	if err := b.runMigrations(); err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return b, nil
}

// runMigrations creates/updates the database schema
func (b *SQLiteBackend) runMigrations() error {
	return b.db.AutoMigrate(
		&models.CategoryRecord{},
		&models.EntryRecord{},
	)
}

// Location returns the database file path.
func (b *SQLiteBackend) Location() string {
	return b.path
}

// Close closes the database connection
func (b *SQLiteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
