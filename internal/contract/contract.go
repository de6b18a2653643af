// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/logbook/schema"
)

// RecordLoader produces the finite, ordered sequence of normalized incident
// records the aggregation engine consumes. Mapping a source-specific column
// schema onto the normalized field names is the loader's concern, not the
// engine's. This allows the core logic to be tested without a real export
// file on disk.
type RecordLoader interface {
	Load(ctx context.Context) ([]schema.IncidentRecord, error)
}

// ReportSink consumes one finished report: its human-readable label, the
// metrics set in fixed key order, and the raw record subset the metrics were
// computed over (for a verbatim passthrough listing). Rendering format and
// on-disk layout are entirely the sink's concern.
type ReportSink interface {
	WriteReport(report *schema.Report) error
}

// HistoryStore records one row per generated report so that past runs can be
// inspected or cleared later. A disabled store accepts writes as no-ops.
type HistoryStore interface {
	RecordRun(run schema.ReportRun) error
	Status() (schema.HistoryStatus, error)
	Clear() error
	Close() error
}
