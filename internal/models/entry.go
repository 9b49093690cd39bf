package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimestampLayout is the layout entries are written with: local wall time,
// no zone, fractional seconds trimmed.
const TimestampLayout = "2006-01-02T15:04:05.999999"

// accepted layouts for reading, most specific first
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// TimeEntry is one recorded duration of work
type TimeEntry struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"time"`
}

// NewTimeEntry builds an entry performed at ts lasting minutes, rounded to
// two decimal places.
func NewTimeEntry(ts time.Time, minutes float64) TimeEntry {
	return TimeEntry{
		Date:    ts.Format(TimestampLayout),
		Minutes: RoundMinutes(minutes),
	}
}

// EntryFromSeconds converts an elapsed number of seconds to an entry.
func EntryFromSeconds(ts time.Time, seconds int) TimeEntry {
	return NewTimeEntry(ts, float64(seconds)/60)
}

// Timestamp parses the stored date. Dates without a zone are read as local time.
func (e TimeEntry) Timestamp() (time.Time, error) {
	return ParseTimestamp(e.Date)
}

// ParseTimestamp parses an ISO-8601 timestamp as written by this program or
// by the earlier revisions of the data file.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("malformed timestamp %q", s)
}

// RoundMinutes rounds to two decimal places.
func RoundMinutes(m float64) float64 {
	return math.Round(m*100) / 100
}

// Category groups entries under a unique, case-sensitive name
type Category struct {
	Name    string
	Entries []TimeEntry
}

// Clone returns a copy that shares nothing with c.
func (c Category) Clone() Category {
	entries := make([]TimeEntry, len(c.Entries))
	copy(entries, c.Entries)
	return Category{Name: c.Name, Entries: entries}
}
