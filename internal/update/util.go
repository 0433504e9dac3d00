package update

import (
	"fmt"
	"strings"
	"time"
)

// defaultDeadlineHour is the hour a date-only deadline resolves to, matching
// the add form default of tomorrow at 09:00.
const defaultDeadlineHour = 9

var whenLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

// parseWhen resolves a due phrase against now. An empty phrase falls back to
// tomorrow morning.
func parseWhen(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "tomorrow":
		return atHour(now.AddDate(0, 0, 1), defaultDeadlineHour), nil
	case "today":
		return atHour(now, defaultDeadlineHour), nil
	}

	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, raw, now.Location()); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, now.Location()); err == nil {
		return atHour(t, defaultDeadlineHour), nil
	}
	return time.Time{}, fmt.Errorf("update: cannot parse due time %q", raw)
}

func atHour(t time.Time, hour int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, t.Location())
}

func formatDateTime(t time.Time) string {
	return t.Format("Monday, January 2, 2006 03:04 PM")
}
