// Package core implements the aggregation engine: pure metric reducers over
// immutable incident-record collections, the summary orchestrator that
// assembles them into an ordered metrics set, and the building partitioner
// that drives per-report computation.
package core
