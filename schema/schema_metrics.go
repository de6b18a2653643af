package schema

// Typed row shapes for each metric. Each metric's row schema is fixed and
// known ahead of time so the compiler catches shape mismatches; the generic
// NamedTable form is derived from these only at the sink boundary.

// GradeCount is one row of the incidents_by_grade metric.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// LocationCount is one row of the incidents_by_location metric.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// HourCount is one row of the incidents_by_hour metric. Hour is a canonical
// hour bucket label such as "2pm", or Unknown.
type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// DateCount is one row of the per-date half of the incidents_by_date metric.
// Date is always rendered as MM/DD/YYYY.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DayOfWeekAverage is one row of the day-of-week half of the
// incidents_by_date metric. Average is rounded to two decimal places.
type DayOfWeekAverage struct {
	Day     string  `json:"day"`
	Average float64 `json:"average"`
}

// DateBreakdown pairs the two tables of the incidents_by_date metric.
// The day-of-week averages always come first.
type DateBreakdown struct {
	DayOfWeekAverages []DayOfWeekAverage `json:"day_of_week_avg"`
	DateCounts        []DateCount        `json:"date_counts"`
}

// SubtypeCount is one row of the incidents_by_subtype metric.
type SubtypeCount struct {
	Subtype string `json:"subtype"`
	Count   int    `json:"count"`
}

// StudentRank is one row of the top_students metric.
type StudentRank struct {
	Student   string `json:"student"`
	Incidents int    `json:"incidents"`
}

// AuthorRank is one row of the top_authors metric.
type AuthorRank struct {
	Author string `json:"author"`
	Logs   int    `json:"logs"`
}

// HourLocationCount is one row of the incidents_by_loc_hour cross-tab.
type HourLocationCount struct {
	Hour     string `json:"hour"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// NamedTable is the generic ordered-rows form a metric result takes at the
// rendering boundary: a name, a fixed column list, and string-rendered rows.
type NamedTable struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// MetricResult is the tagged variant of a metric's output: either a single
// table, or an ordered pair of tables (used only by incidents_by_date).
// Exactly one of the two fields is set.
type MetricResult struct {
	Single *NamedTable  `json:"single,omitempty"`
	Pair   []NamedTable `json:"pair,omitempty"`
}

// Tables flattens the result into its tables in render order.
func (r MetricResult) Tables() []NamedTable {
	if r.Single != nil {
		return []NamedTable{*r.Single}
	}
	return r.Pair
}

// Empty reports whether every table in the result has zero rows.
func (r MetricResult) Empty() bool {
	for _, t := range r.Tables() {
		if len(t.Rows) > 0 {
			return false
		}
	}
	return true
}

// Metric is one named entry of a MetricsSet.
type Metric struct {
	Name   string       `json:"name"`
	Result MetricResult `json:"result"`
}

// MetricsSet is the ordered bundle of computed summary tables for one record
// collection. Key order is fixed by the orchestrator and matches MetricOrder.
type MetricsSet []Metric

// Lookup returns the result for a metric name, if present.
func (m MetricsSet) Lookup(name string) (MetricResult, bool) {
	for _, metric := range m {
		if metric.Name == name {
			return metric.Result, true
		}
	}
	return MetricResult{}, false
}

// Report bundles everything the rendering sink needs for one output artifact:
// a human-readable label (district or building name), the record subset the
// metrics were computed over, and the metrics set itself.
type Report struct {
	Label   string           `json:"label"`
	Records []IncidentRecord `json:"records"`
	Metrics MetricsSet       `json:"metrics"`
}
