package core

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/logbook/schema"
)

// hourLayouts are the accepted incident-time formats, tried in order.
// The first layout that parses wins.
var hourLayouts = []string{
	"3:04:05 PM", // 12-hour with seconds
	"3:04 PM",    // 12-hour without seconds
	"15:04",      // 24-hour without meridiem
}

// HourBucket normalizes a raw incident-time string into a canonical hour
// label such as "9am" or "2pm". Absent, blank, or unparseable values map to
// the Unknown bucket. Meridiem casing is accepted in any form.
func HourBucket(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return schema.Unknown
	}
	upper := strings.ToUpper(trimmed)
	for _, layout := range hourLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return formatHourLabel(t.Hour())
		}
	}
	return schema.Unknown
}

// formatHourLabel renders a 24-hour value as the 12-hour bucket label with
// the leading zero stripped and a lowercase meridiem suffix.
func formatHourLabel(hour24 int) string {
	meridiem := "am"
	if hour24 >= 12 {
		meridiem = "pm"
	}
	h := hour24 % 12
	if h == 0 {
		h = 12
	}
	return strconv.Itoa(h) + meridiem
}

// hourBucketRank maps a bucket label to its chronological position, starting
// at 12am (rank 0) through 11pm (rank 23). Unknown, or anything else that is
// not a valid bucket label, ranks after every real hour.
func hourBucketRank(label string) int {
	const unknownRank = 24

	var meridiem string
	switch {
	case strings.HasSuffix(label, "am"):
		meridiem = "am"
	case strings.HasSuffix(label, "pm"):
		meridiem = "pm"
	default:
		return unknownRank
	}

	h, err := strconv.Atoi(strings.TrimSuffix(label, meridiem))
	if err != nil || h < 1 || h > 12 {
		return unknownRank
	}

	h %= 12
	if meridiem == "pm" {
		h += 12
	}
	return h
}

// SortHourBuckets orders bucket labels chronologically, with Unknown always
// last regardless of its lexical value. The sort is stable, so duplicate
// labels keep their input order.
func SortHourBuckets(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return hourBucketRank(labels[i]) < hourBucketRank(labels[j])
	})
}
