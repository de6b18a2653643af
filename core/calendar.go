package core

import (
	"strings"
	"time"
)

// canonicalDateLayout is the MM/DD/YYYY form every parsed date renders as,
// regardless of which separator matched on input.
const canonicalDateLayout = "01/02/2006"

// dateLayouts are the accepted incident-date formats, tried in order.
var dateLayouts = []string{
	"01/02/2006", // slash-separated
	"01-02-2006", // hyphen-separated
}

// ParseCalendarDate parses a raw incident-date string. It reports false for
// absent, blank, or unparseable values; such records are excluded from the
// date metrics only and still count everywhere else.
func ParseCalendarDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatCalendarDate renders a parsed date in its canonical MM/DD/YYYY form.
func FormatCalendarDate(t time.Time) string {
	return t.Format(canonicalDateLayout)
}

// DayOfWeek returns the Gregorian weekday name (Monday..Sunday) of a date.
func DayOfWeek(t time.Time) string {
	return t.Weekday().String()
}
