package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/balkashynov/deepwork/internal/models"
)

var now = time.Date(2026, 10, 17, 15, 0, 0, 0, time.Local)

func entryAt(t time.Time, minutes float64) models.TimeEntry {
	return models.NewTimeEntry(t, minutes)
}

func TestComputeWindows(t *testing.T) {
	cats := []models.Category{{
		Name: "Writing",
		Entries: []models.TimeEntry{
			entryAt(now.Add(-2*time.Hour), 30),
			entryAt(now.AddDate(0, 0, -10), 100),
		},
	}}
	st := Compute(cats, now)
	if st.Overall.Daily != 30 || st.Overall.Weekly != 30 || st.Overall.Lifetime != 130 {
		t.Errorf("overall = %+v, want daily 30 weekly 30 lifetime 130", st.Overall)
	}
	if st.Categories[0].Totals != st.Overall {
		t.Errorf("single category totals %+v differ from overall %+v", st.Categories[0].Totals, st.Overall)
	}
}

func TestComputeWeekBoundaries(t *testing.T) {
	startOfToday := time.Date(2026, 10, 17, 0, 0, 0, 0, time.Local)
	tests := []struct {
		name       string
		at         time.Time
		wantDaily  float64
		wantWeekly float64
	}{
		{"midnight today", startOfToday, 10, 10},
		{"end of yesterday", startOfToday.Add(-time.Second), 0, 10},
		{"six days ago", startOfToday.AddDate(0, 0, -6), 0, 10},
		{"seven days ago", startOfToday.AddDate(0, 0, -7).Add(23 * time.Hour), 0, 0},
		{"tomorrow", startOfToday.AddDate(0, 0, 1), 0, 0},
	}
	for _, tt := range tests {
		st := Compute([]models.Category{{Name: "c", Entries: []models.TimeEntry{entryAt(tt.at, 10)}}}, now)
		if st.Overall.Daily != tt.wantDaily || st.Overall.Weekly != tt.wantWeekly || st.Overall.Lifetime != 10 {
			t.Errorf("%s: got %+v, want daily %v weekly %v lifetime 10", tt.name, st.Overall, tt.wantDaily, tt.wantWeekly)
		}
	}
}

func TestComputeSkipsMalformed(t *testing.T) {
	cats := []models.Category{
		{Name: "A", Entries: []models.TimeEntry{{Date: "not a date", Minutes: 50}, entryAt(now, 5)}},
		{Name: "B", Entries: []models.TimeEntry{}},
	}
	st := Compute(cats, now)
	if st.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", st.Skipped)
	}
	if st.Overall.Lifetime != 5 {
		t.Errorf("lifetime = %v, want 5", st.Overall.Lifetime)
	}
	if len(st.Categories) != 2 || st.Categories[1].Name != "B" || st.Categories[1].Lifetime != 0 {
		t.Errorf("categories = %+v", st.Categories)
	}
}

func TestComputeSumsAcrossCategories(t *testing.T) {
	cats := []models.Category{
		{Name: "A", Entries: []models.TimeEntry{entryAt(now, 10), entryAt(now.AddDate(0, 0, -2), 20)}},
		{Name: "B", Entries: []models.TimeEntry{entryAt(now, 1.5)}},
	}
	st := Compute(cats, now)
	want := Totals{Daily: 11.5, Weekly: 31.5, Lifetime: 31.5}
	if st.Overall != want {
		t.Errorf("overall = %+v, want %+v", st.Overall, want)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0:00:00"},
		{0.08, "0:00:05"},
		{1.02, "0:01:01"},
		{61.0167, "1:01:01"},
		{130, "2:10:00"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestStringReport(t *testing.T) {
	cats := []models.Category{{Name: "Writing", Entries: []models.TimeEntry{entryAt(now, 30)}}}
	out := Compute(cats, now).String()
	for _, want := range []string{"Statistics for 2026-10-17", "Today:     0:30:00", "Writing", "  Lifetime:  0:30:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
