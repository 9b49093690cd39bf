package parser

import (
	"testing"
	"time"

	"github.com/balkashynov/deepwork/internal/models"
)

func TestParseEntryTime(t *testing.T) {
	now := time.Date(2026, 10, 17, 15, 30, 0, 0, time.Local)
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-10-01T09:15:00", time.Date(2026, 10, 1, 9, 15, 0, 0, time.Local)},
		{"2026-10-01 09:15", time.Date(2026, 10, 1, 9, 15, 0, 0, time.Local)},
		{"2026-10-01", time.Date(2026, 10, 1, 12, 0, 0, 0, time.Local)},
		{"05/10/2026", time.Date(2026, 10, 5, 12, 0, 0, 0, time.Local)},
		{"today", now},
		{"Yesterday", now.AddDate(0, 0, -1)},
		{"3 days ago", now.AddDate(0, 0, -3)},
		{"2 hours ago", now.Add(-2 * time.Hour)},
		{"1 week ago", now.AddDate(0, 0, -7)},
	}
	for _, tt := range tests {
		got, err := ParseEntryTime(tt.input, now)
		if err != nil {
			t.Errorf("ParseEntryTime(%q): %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseEntryTime(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseEntryTimeInvalid(t *testing.T) {
	now := time.Now()
	for _, in := range []string{"", "31/02/2026", "13/13/2026", "soon", "3 fortnights ago"} {
		if _, err := ParseEntryTime(in, now); err == nil {
			t.Errorf("ParseEntryTime(%q) expected error", in)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	if m, err := ParseMinutes(" 25.5 "); err != nil || m != 25.5 {
		t.Errorf("ParseMinutes = %v, %v", m, err)
	}
	if m, err := ParseMinutes("-3"); err != nil || m != -3 {
		t.Errorf("negative minutes should parse, got %v, %v", m, err)
	}
	for _, in := range []string{"ten", "NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"} {
		if _, err := ParseMinutes(in); err == nil {
			t.Errorf("ParseMinutes(%q) expected error", in)
		}
	}
}

func TestParseTimerMinutes(t *testing.T) {
	if m, err := ParseTimerMinutes("45"); err != nil || m != 45 {
		t.Errorf("ParseTimerMinutes(45) = %v, %v", m, err)
	}
	for _, in := range []string{"0", "-5", "1.5", "x"} {
		if _, err := ParseTimerMinutes(in); err == nil {
			t.Errorf("ParseTimerMinutes(%q) expected error", in)
		}
	}
}

func TestParseShortcuts(t *testing.T) {
	got, err := ParseShortcuts("ctrl+r, ctrl+p ,ctrl+s")
	if err != nil {
		t.Fatal(err)
	}
	want := models.Shortcuts{Start: "ctrl+r", Pause: "ctrl+p", Reset: "ctrl+s"}
	if got != want {
		t.Errorf("ParseShortcuts = %+v, want %+v", got, want)
	}
	for _, in := range []string{"a,b", "a,b,c,d", "a,,c", "a,a,b", "q,p,r", "s,m,r", "s,p,R", "ctrl+c,p,r"} {
		if _, err := ParseShortcuts(in); err == nil {
			t.Errorf("ParseShortcuts(%q) expected error", in)
		}
	}
}
