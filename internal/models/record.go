package models

import (
	"time"
)

// CategoryRecord is a category row in the SQLite backend
type CategoryRecord struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time
	Name      string `gorm:"uniqueIndex;not null"`
	Position  int    `gorm:"not null"`

	Entries []EntryRecord `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

// EntryRecord is a time entry row in the SQLite backend
type EntryRecord struct {
	ID         string  `gorm:"primaryKey;size:36"`
	CategoryID uint    `gorm:"index;not null"`
	Seq        int     `gorm:"not null"` // append order within the category
	Date       string  `gorm:"not null"`
	Minutes    float64 `gorm:"not null"`
}
