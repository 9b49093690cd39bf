package db

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/balkashynov/deepwork/internal/logger"
	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/store"
)

// Load reads every category with its entries, in position and append order.
func (b *SQLiteBackend) Load() (*models.Document, error) {
	var records []models.CategoryRecord
	err := b.db.
		Preload("Entries", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("seq ASC")
		}).
		Order("position ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	doc := models.NewDocument()
	for _, r := range records {
		c := models.Category{Name: r.Name, Entries: make([]models.TimeEntry, 0, len(r.Entries))}
		for _, e := range r.Entries {
			c.Entries = append(c.Entries, models.TimeEntry{Date: e.Date, Minutes: e.Minutes})
		}
		doc.Categories = append(doc.Categories, c)
	}
	return doc, nil
}

// Save rewrites both tables inside one transaction.
func (b *SQLiteBackend) Save(doc *models.Document) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.EntryRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CategoryRecord{}).Error; err != nil {
			return err
		}

		for pos, c := range doc.Categories {
			record := models.CategoryRecord{Name: c.Name, Position: pos}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("saving category %q: %w", c.Name, err)
			}
			if len(c.Entries) == 0 {
				continue
			}
			entries := make([]models.EntryRecord, len(c.Entries))
			for i, e := range c.Entries {
				entries[i] = models.EntryRecord{
					ID:         uuid.NewString(),
					CategoryID: record.ID,
					Seq:        i,
					Date:       e.Date,
					Minutes:    e.Minutes,
				}
			}
			if err := tx.Create(&entries).Error; err != nil {
				return fmt.Errorf("saving entries for %q: %w", c.Name, err)
			}
		}
		return nil
	})
}

// Backup snapshots the database with VACUUM INTO.
func (b *SQLiteBackend) Backup(category string, at time.Time) (string, error) {
	// VACUUM INTO accepts an existing empty file
	f, dest, err := store.CreateBackupFile(b.backupDir, category, at, ".db")
	if err != nil {
		return "", err
	}
	_ = f.Close()
	if err := b.db.Exec("VACUUM INTO ?", dest).Error; err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("backup: %w", err)
	}
	logger.Info("backup written", "path", dest, "category", category)
	return dest, nil
}

var _ store.Backend = (*SQLiteBackend)(nil)
