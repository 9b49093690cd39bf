package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/balkashynov/deepwork/internal/logger"
	"github.com/balkashynov/deepwork/internal/models"
)

var (
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyName        = errors.New("category name cannot be empty")
)

// CategoryStore maps category names to their entries and persists every
// mutation through its backend. The in-memory document stays authoritative
// when a save fails.
type CategoryStore struct {
	backend Backend
	doc     *models.Document
	now     func() time.Time
}

// Open loads the store from backend. On first run the empty store is
// written out so the data file exists from then on.
func Open(backend Backend) (*CategoryStore, error) {
	s := &CategoryStore{backend: backend, now: time.Now}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	if len(s.doc.Categories) == 0 {
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetClock overrides the time source used for backup names.
func (s *CategoryStore) SetClock(now func() time.Time) {
	s.now = now
}

// Location describes where the store is persisted.
func (s *CategoryStore) Location() string {
	return s.backend.Location()
}

// Reload replaces the in-memory state with what is on disk.
func (s *CategoryStore) Reload() error {
	doc, err := s.backend.Load()
	if err != nil {
		return err
	}
	s.doc = doc
	logger.Debug("store loaded", "location", s.backend.Location(), "categories", len(doc.Categories))
	return nil
}

// AddCategory inserts an empty category. Duplicates are rejected.
func (s *CategoryStore) AddCategory(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if s.doc.Index(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrCategoryExists, name)
	}
	s.doc.Categories = append(s.doc.Categories, models.Category{
		Name:    name,
		Entries: []models.TimeEntry{},
	})
	logger.Info("category added", "name", name)
	return s.persist()
}

// DeleteCategory snapshots the store and removes the category with all its
// entries. Deleting an unknown name is a no-op. The backup path is returned.
func (s *CategoryStore) DeleteCategory(name string) (string, error) {
	idx := s.doc.Index(name)
	if idx < 0 {
		return "", nil
	}

	backup, err := s.backend.Backup(name, s.now())
	if err != nil {
		return "", err
	}

	s.doc.Categories = append(s.doc.Categories[:idx], s.doc.Categories[idx+1:]...)
	logger.Info("category deleted", "name", name, "backup", backup)
	return backup, s.persist()
}

// Append adds an entry to an existing category.
func (s *CategoryStore) Append(name string, entry models.TimeEntry) error {
	idx := s.doc.Index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	prev := s.doc.Categories[idx].Entries
	s.doc.Categories[idx].Entries = append(prev, entry)
	if err := s.persist(); err != nil {
		if _, encErr := json.Marshal(entry); encErr != nil {
			// unencodable entries are never kept
			s.doc.Categories[idx].Entries = prev
		}
		return err
	}
	logger.Info("entry committed", "category", name, "date", entry.Date, "minutes", entry.Minutes)
	return nil
}

// ListCategories returns category names in insertion order.
func (s *CategoryStore) ListCategories() []string {
	names := make([]string, len(s.doc.Categories))
	for i, c := range s.doc.Categories {
		names[i] = c.Name
	}
	return names
}

// Has reports whether name is a category.
func (s *CategoryStore) Has(name string) bool {
	return s.doc.Index(name) >= 0
}

// Empty reports whether no categories exist.
func (s *CategoryStore) Empty() bool {
	return len(s.doc.Categories) == 0
}

// Entries returns a copy of the entries for name.
func (s *CategoryStore) Entries(name string) ([]models.TimeEntry, bool) {
	idx := s.doc.Index(name)
	if idx < 0 {
		return nil, false
	}
	return s.doc.Categories[idx].Clone().Entries, true
}

// Categories returns a deep copy of all categories in order.
func (s *CategoryStore) Categories() []models.Category {
	return s.doc.Clone().Categories
}

func (s *CategoryStore) persist() error {
	if err := s.backend.Save(s.doc); err != nil {
		logger.Error("save failed", "location", s.backend.Location(), "error", err)
		return err
	}
	return nil
}
