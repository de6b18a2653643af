package schema

import "time"

// ReportRun is one persisted row of run history. RunAt is the wall-clock
// time the report was written.
type ReportRun struct {
	RunAt       time.Time
	Label       string
	RecordCount int
	OutputMode  OutputMode
}

// HistoryStatus summarizes the run history store for status reporting.
type HistoryStatus struct {
	Backend       DatabaseBackend
	Connected     bool
	TotalRuns     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
}
