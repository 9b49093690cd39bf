package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/deepwork/internal/models"
)

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s+(minute|minutes|hour|hours|day|days|week|weeks)\s+ago$`)
)

// ParseEntryTime parses the timestamp of a manual entry.
// Supported formats:
// - ISO-8601 / RFC 3339 (e.g., "2026-10-17T14:30:00", "2026-10-17 14:30")
// - yyyy-mm-dd (noon that day)
// - dd/mm/yyyy (noon that day)
// - today, yesterday, now
// - X minutes/hours/days/weeks ago
func ParseEntryTime(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	if t, err := models.ParseTimestamp(input); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return t.Add(12 * time.Hour), nil
	}
	if t, err := parseDateFormat(input, now.Location()); err == nil {
		return t, nil
	}

	switch strings.ToLower(input) {
	case "now":
		return now, nil
	case "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	if t, err := parseRelativeTime(input, now); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: yyyy-mm-dd hh:mm, dd/mm/yyyy, yesterday, or X hours/days ago")
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string, loc *time.Location) (time.Time, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, loc)
	// time.Date normalizes overflow, so a changed day means it was invalid
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return t, nil
}

// parseRelativeTime parses "3 days ago", "2 hours ago", etc.
func parseRelativeTime(input string, now time.Time) (time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "minute", "minutes":
		return now.Add(-time.Duration(amount) * time.Minute), nil
	case "hour", "hours":
		return now.Add(-time.Duration(amount) * time.Hour), nil
	case "day", "days":
		return now.AddDate(0, 0, -amount), nil
	default:
		return now.AddDate(0, 0, -7*amount), nil
	}
}

// ParseMinutes parses a manual entry duration. It only checks the number is
// well formed; the caller decides whether zero is acceptable.
func ParseMinutes(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("minutes are required")
	}
	m, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, fmt.Errorf("invalid number of minutes %q", input)
	}
	return m, nil
}

// ParseTimerMinutes parses a positive whole number of minutes.
func ParseTimerMinutes(input string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid number of minutes %q", input)
	}
	if m <= 0 {
		return 0, fmt.Errorf("timer duration must be a positive number of minutes")
	}
	return m, nil
}

// ParseShortcuts parses "start,pause,reset" into three key bindings.
func ParseShortcuts(input string) (models.Shortcuts, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return models.Shortcuts{}, fmt.Errorf("please enter three shortcuts separated by commas")
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" {
			return models.Shortcuts{}, fmt.Errorf("shortcut %d is empty", i+1)
		}
	}
	if parts[0] == parts[1] || parts[0] == parts[2] || parts[1] == parts[2] {
		return models.Shortcuts{}, fmt.Errorf("shortcuts must be distinct")
	}
	for _, p := range parts {
		if models.IsReservedKey(p) {
			return models.Shortcuts{}, fmt.Errorf("%q is already bound to another action", p)
		}
	}
	return models.Shortcuts{Start: parts[0], Pause: parts[1], Reset: parts[2]}, nil
}
