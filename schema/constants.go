package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// Sentinels applied when an optional field is absent or malformed.
const (
	// Unknown is the default bucket for any missing categorical value.
	Unknown = "Unknown"

	// UnknownBuilding is the partition key for records without a school.
	UnknownBuilding = "Unknown Building"

	// DistrictLabel names the whole-collection report.
	DistrictLabel = "District-Wide"
)

// Fixed metric names, in the exact order the orchestrator emits them.
const (
	MetricGrade       = "incidents_by_grade"
	MetricLocation    = "incidents_by_location"
	MetricHour        = "incidents_by_hour"
	MetricDate        = "incidents_by_date"
	MetricSubtype     = "incidents_by_subtype"
	MetricTopStudents = "top_students"
	MetricTopAuthors  = "top_authors"
	MetricLocHour     = "incidents_by_loc_hour"
)

// MetricOrder is the fixed key order of every MetricsSet.
var MetricOrder = []string{
	MetricGrade,
	MetricLocation,
	MetricHour,
	MetricDate,
	MetricSubtype,
	MetricTopStudents,
	MetricTopAuthors,
	MetricLocHour,
}

// Sub-table names of the incidents_by_date paired result.
const (
	DateSubDayOfWeekAvg = "day_of_week_avg"
	DateSubDateCounts   = "date_counts"
)

// WeekOrder is the fixed Monday-first weekday order for day-of-week rows.
var WeekOrder = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
