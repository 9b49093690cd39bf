// Package stats rolls time entries up into daily, weekly and lifetime totals.
package stats

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/balkashynov/deepwork/internal/logger"
	"github.com/balkashynov/deepwork/internal/models"
)

// WeekDays is the length of the trailing window, today included.
const WeekDays = 7

// Totals are minute sums over the three windows
type Totals struct {
	Daily    float64
	Weekly   float64
	Lifetime float64
}

func (t *Totals) add(o Totals) {
	t.Daily += o.Daily
	t.Weekly += o.Weekly
	t.Lifetime += o.Lifetime
}

// CategoryTotals are the totals of one category
type CategoryTotals struct {
	Name string
	Totals
}

// Statistics is the aggregate over a whole store relative to Now
type Statistics struct {
	Now        time.Time
	Overall    Totals
	Categories []CategoryTotals
	// Skipped counts entries whose timestamp could not be parsed.
	Skipped int
}

// Compute aggregates categories relative to now. Calendar days are taken in
// now's location. Entries with malformed timestamps count toward nothing
// and are logged.
func Compute(categories []models.Category, now time.Time) Statistics {
	today := startOfDay(now)
	weekStart := today.AddDate(0, 0, -(WeekDays - 1))

	st := Statistics{Now: now, Categories: make([]CategoryTotals, 0, len(categories))}
	for _, c := range categories {
		ct := CategoryTotals{Name: c.Name}
		for _, e := range c.Entries {
			ts, err := e.Timestamp()
			if err != nil {
				st.Skipped++
				logger.Warn("skipping entry", "category", c.Name, "date", e.Date, "error", err)
				continue
			}
			day := startOfDay(ts.In(now.Location()))
			ct.Lifetime += e.Minutes
			if day.Equal(today) {
				ct.Daily += e.Minutes
			}
			if !day.Before(weekStart) && !day.After(today) {
				ct.Weekly += e.Minutes
			}
		}
		st.Overall.add(ct.Totals)
		st.Categories = append(st.Categories, ct)
	}
	return st
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatMinutes renders minutes as H:MM:SS, rounded to the nearest second.
func FormatMinutes(minutes float64) string {
	secs := int(math.Round(minutes * 60))
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// String renders the overall totals followed by a per-category breakdown.
func (s Statistics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statistics for %s\n\n", s.Now.Format("2006-01-02"))
	writeTotals(&b, "", s.Overall)

	if len(s.Categories) > 0 {
		b.WriteString("\nBy category:\n")
	}
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "\n%s\n", c.Name)
		writeTotals(&b, "  ", c.Totals)
	}
	if s.Skipped > 0 {
		fmt.Fprintf(&b, "\n%d entries skipped (unreadable date)\n", s.Skipped)
	}
	return b.String()
}

func writeTotals(b *strings.Builder, indent string, t Totals) {
	fmt.Fprintf(b, "%s%-11s%s\n", indent, "Today:", FormatMinutes(t.Daily))
	fmt.Fprintf(b, "%s%-11s%s\n", indent, "This week:", FormatMinutes(t.Weekly))
	fmt.Fprintf(b, "%s%-11s%s\n", indent, "Lifetime:", FormatMinutes(t.Lifetime))
}
