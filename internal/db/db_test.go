package db_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/balkashynov/deepwork/internal/db"
	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/store"
)

func openBackend(t *testing.T) (*db.SQLiteBackend, string) {
	t.Helper()
	dir := t.TempDir()
	b, err := db.Open(filepath.Join(dir, "data.db"), filepath.Join(dir, "backup"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b, dir
}

func TestLoadEmpty(t *testing.T) {
	b, _ := openBackend(t)
	doc, err := b.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Categories) != 0 {
		t.Errorf("categories = %d, want 0", len(doc.Categories))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b, _ := openBackend(t)
	ts := time.Date(2026, 10, 1, 9, 0, 0, 0, time.Local)
	doc := &models.Document{Categories: []models.Category{
		{Name: "Reading", Entries: []models.TimeEntry{
			models.NewTimeEntry(ts, 45),
			models.NewTimeEntry(ts.AddDate(0, 0, -3), 12.25),
		}},
		{Name: "Admin", Entries: []models.TimeEntry{}},
		{Name: "Code", Entries: []models.TimeEntry{models.NewTimeEntry(ts, 0.08)}},
	}}

	if err := b.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// saving twice must replace, not duplicate
	if err := b.Save(doc); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := b.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, doc) {
		t.Errorf("Load = %+v\nwant %+v", loaded, doc)
	}
}

func TestStoreOverSQLite(t *testing.T) {
	b, dir := openBackend(t)
	s, err := store.Open(b)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddCategory("Deep"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddCategory("Deep"); err == nil {
		t.Error("duplicate category accepted")
	}
	if err := s.Append("Deep", models.NewTimeEntry(time.Now(), 30)); err != nil {
		t.Fatal(err)
	}

	backup, err := s.DeleteCategory("Deep")
	if err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if filepath.Dir(backup) != filepath.Join(dir, "backup") {
		t.Errorf("backup = %s", backup)
	}
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("backup missing: %v", err)
	}

	// the snapshot still holds the deleted category
	snap, err := db.Open(backup, filepath.Join(dir, "other"))
	if err != nil {
		t.Fatal(err)
	}
	defer snap.Close()
	doc, err := snap.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Categories) != 1 || doc.Categories[0].Name != "Deep" || len(doc.Categories[0].Entries) != 1 {
		t.Errorf("snapshot = %+v", doc)
	}
	if s.Has("Deep") {
		t.Error("category still live after delete")
	}
}
