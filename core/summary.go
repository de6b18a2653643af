package core

import (
	"strconv"

	"github.com/huangsam/logbook/schema"
)

// CalculateSummaryMetrics runs every metric function against one record
// collection and assembles the results into a MetricsSet. The key order is
// fixed and matches schema.MetricOrder; incidents_by_date is the one paired
// result, with the day-of-week averages always ahead of the date counts.
// Metric functions tolerate malformed rows internally, so no metric's input
// can abort another's computation.
func CalculateSummaryMetrics(records []schema.IncidentRecord, topStudents, topAuthors int) schema.MetricsSet {
	set := make(schema.MetricsSet, 0, len(schema.MetricOrder))
	set = append(set, schema.Metric{Name: schema.MetricGrade, Result: gradeResult(CountByGrade(records))})
	set = append(set, schema.Metric{Name: schema.MetricLocation, Result: locationResult(CountByLocation(records))})
	set = append(set, schema.Metric{Name: schema.MetricHour, Result: hourResult(CountByHour(records))})
	set = append(set, schema.Metric{Name: schema.MetricDate, Result: dateResult(CountByDate(records))})
	set = append(set, schema.Metric{Name: schema.MetricSubtype, Result: subtypeResult(CountBySubtype(records))})
	set = append(set, schema.Metric{Name: schema.MetricTopStudents, Result: studentResult(TopStudents(records, topStudents))})
	set = append(set, schema.Metric{Name: schema.MetricTopAuthors, Result: authorResult(TopAuthors(records, topAuthors))})
	set = append(set, schema.Metric{Name: schema.MetricLocHour, Result: locHourResult(HourlyLocation(records))})
	return set
}

// FormatAverage renders a day-of-week average with two decimal places.
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func gradeResult(rows []schema.GradeCount) schema.MetricResult {
	t := schema.NamedTable{Name: schema.MetricGrade, Columns: []string{"Grade", "Count"}}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Grade, strconv.Itoa(r.Count)})
	}
	return schema.MetricResult{Single: &t}
}

func locationResult(rows []schema.LocationCount) schema.MetricResult {
	t := schema.NamedTable{Name: schema.MetricLocation, Columns: []string{"Location", "Count"}}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Location, strconv.Itoa(r.Count)})
	}
	return schema.MetricResult{Single: &t}
}

func hourResult(rows []schema.HourCount) schema.MetricResult {
	t := schema.NamedTable{Name: schema.MetricHour, Columns: []string{"Hour", "Count"}}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Hour, strconv.Itoa(r.Count)})
	}
	return schema.MetricResult{Single: &t}
}

func dateResult(breakdown schema.DateBreakdown) schema.MetricResult {
	avg := schema.NamedTable{Name: schema.DateSubDayOfWeekAvg, Columns: []string{"Day of Week", "Average Incidents"}}
	avg.Rows = make([][]string, 0, len(breakdown.DayOfWeekAverages))
	for _, r := range breakdown.DayOfWeekAverages {
		avg.Rows = append(avg.Rows, []string{r.Day, FormatAverage(r.Average)})
	}

	dates := schema.NamedTable{Name: schema.DateSubDateCounts, Columns: []string{"Date", "Count"}}
	dates.Rows = make([][]string, 0, len(breakdown.DateCounts))
	for _, r := range breakdown.DateCounts {
		dates.Rows = append(dates.Rows, []string{r.Date, strconv.Itoa(r.Count)})
	}

	return schema.MetricResult{Pair: []schema.NamedTable{avg, dates}}
}

func subtypeResult(rows []schema.SubtypeCount) schema.MetricResult {
	t := schema.NamedTable{Name: schema.MetricSubtype, Columns: []string{"Subtype", "Count"}}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Subtype, strconv.Itoa(r.Count)})
	}
	return schema.MetricResult{Single: &t}
}

func studentResult(rows []schema.StudentRank) schema.MetricResult {
	t := schema.NamedTable{Name: schema.MetricTopStudents, Columns: []string{"Student", "Incidents"}}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Student, strconv.Itoa(r.Incidents)})
	}
	return schema.MetricResult{Single: &t}
}

func authorResult(rows []schema.AuthorRank) schema.MetricResult {
	t := schema.NamedTable{Name: schema.MetricTopAuthors, Columns: []string{"Author", "Logs"}}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Author, strconv.Itoa(r.Logs)})
	}
	return schema.MetricResult{Single: &t}
}

func locHourResult(rows []schema.HourLocationCount) schema.MetricResult {
	t := schema.NamedTable{Name: schema.MetricLocHour, Columns: []string{"Hour", "Location", "Count"}}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Hour, r.Location, strconv.Itoa(r.Count)})
	}
	return schema.MetricResult{Single: &t}
}
