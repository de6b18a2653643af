package core

import (
	"strings"

	"github.com/huangsam/logbook/schema"
)

// QualityStats tallies data-quality conditions observed in one collection.
// These are diagnostics only: a record with a bad time still counts under
// the Unknown bucket, and a record with a bad date still counts in every
// metric except the date ones.
type QualityStats struct {
	Records          int `json:"records"`
	UnparseableTimes int `json:"unparseable_times"` // non-empty incident_time that matched no layout
	UnparseableDates int `json:"unparseable_dates"` // non-empty incident_date that matched no layout
	MissingDates     int `json:"missing_dates"`     // absent incident_date, excluded from date metrics
}

// Clean reports whether the collection had no quality findings.
func (s QualityStats) Clean() bool {
	return s.UnparseableTimes == 0 && s.UnparseableDates == 0 && s.MissingDates == 0
}

// AuditQuality scans the collection once and counts records whose incident
// time or date cannot be normalized. The driver logs the result; the metric
// functions themselves stay pure.
func AuditQuality(records []schema.IncidentRecord) QualityStats {
	stats := QualityStats{Records: len(records)}
	for _, r := range records {
		timeStr := strings.TrimSpace(r.IncidentTime)
		if timeStr != "" && HourBucket(timeStr) == schema.Unknown {
			stats.UnparseableTimes++
		}

		dateStr := strings.TrimSpace(r.IncidentDate)
		if dateStr == "" {
			stats.MissingDates++
		} else if _, ok := ParseCalendarDate(dateStr); !ok {
			stats.UnparseableDates++
		}
	}
	return stats
}
