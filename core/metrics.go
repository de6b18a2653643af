package core

import (
	"math"
	"sort"

	"github.com/huangsam/logbook/schema"
)

// Each metric function below is a pure reduction over the full (already
// partitioned, if applicable) record collection. None of them mutate a
// record or share state with another; malformed values are absorbed as
// Unknown or skipped per field, never raised.

// CountByGrade tallies incidents per grade level. Rows keep the first-seen
// order of distinct grades.
func CountByGrade(records []schema.IncidentRecord) []schema.GradeCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		grade := schema.OrUnknown(r.GradeLevel)
		if _, ok := counts[grade]; !ok {
			order = append(order, grade)
		}
		counts[grade]++
	}

	rows := make([]schema.GradeCount, 0, len(order))
	for _, grade := range order {
		rows = append(rows, schema.GradeCount{Grade: grade, Count: counts[grade]})
	}
	return rows
}

// CountByLocation tallies incidents per location in first-seen order.
func CountByLocation(records []schema.IncidentRecord) []schema.LocationCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		location := schema.OrUnknown(r.IncidentLocation)
		if _, ok := counts[location]; !ok {
			order = append(order, location)
		}
		counts[location]++
	}

	rows := make([]schema.LocationCount, 0, len(order))
	for _, location := range order {
		rows = append(rows, schema.LocationCount{Location: location, Count: counts[location]})
	}
	return rows
}

// CountBySubtype tallies incidents per subtype in first-seen order.
func CountBySubtype(records []schema.IncidentRecord) []schema.SubtypeCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		subtype := schema.OrUnknown(r.SubtypeName)
		if _, ok := counts[subtype]; !ok {
			order = append(order, subtype)
		}
		counts[subtype]++
	}

	rows := make([]schema.SubtypeCount, 0, len(order))
	for _, subtype := range order {
		rows = append(rows, schema.SubtypeCount{Subtype: subtype, Count: counts[subtype]})
	}
	return rows
}

// CountByHour tallies incidents per hour bucket. The Unknown bucket is
// always present even at zero, and rows come out in chronological bucket
// order with Unknown last.
func CountByHour(records []schema.IncidentRecord) []schema.HourCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		bucket := HourBucket(r.IncidentTime)
		if _, ok := counts[bucket]; !ok {
			order = append(order, bucket)
		}
		counts[bucket]++
	}

	if _, ok := counts[schema.Unknown]; !ok {
		counts[schema.Unknown] = 0
		order = append(order, schema.Unknown)
	}

	SortHourBuckets(order)

	rows := make([]schema.HourCount, 0, len(order))
	for _, bucket := range order {
		rows = append(rows, schema.HourCount{Hour: bucket, Count: counts[bucket]})
	}
	return rows
}

// CountByDate tallies incidents per calendar date and derives the average
// incidents per weekday. Records without a parseable date are excluded here
// only. Weekday rows come out in fixed Monday-first order; a weekday with no
// occurring dates is omitted, so the average never divides by zero.
// Date-count rows keep the first-seen order of their canonical date value.
func CountByDate(records []schema.IncidentRecord) schema.DateBreakdown {
	dateCounts := make(map[string]int)
	var dateOrder []string

	dayTotals := make(map[string]int) // incidents per weekday
	dayDates := make(map[string]int)  // distinct dates per weekday

	for _, r := range records {
		t, ok := ParseCalendarDate(r.IncidentDate)
		if !ok {
			continue
		}
		date := FormatCalendarDate(t)
		day := DayOfWeek(t)

		if _, seen := dateCounts[date]; !seen {
			dateOrder = append(dateOrder, date)
			dayDates[day]++
		}
		dateCounts[date]++
		dayTotals[day]++
	}

	var averages []schema.DayOfWeekAverage
	for _, day := range schema.WeekOrder {
		n := dayDates[day]
		if n == 0 {
			continue
		}
		avg := float64(dayTotals[day]) / float64(n)
		averages = append(averages, schema.DayOfWeekAverage{
			Day:     day,
			Average: math.Round(avg*100) / 100,
		})
	}

	dates := make([]schema.DateCount, 0, len(dateOrder))
	for _, date := range dateOrder {
		dates = append(dates, schema.DateCount{Date: date, Count: dateCounts[date]})
	}

	return schema.DateBreakdown{DayOfWeekAverages: averages, DateCounts: dates}
}

// TopStudents ranks students by incident count, descending, truncated to n.
// The sort compares counts only and is stable: tied students keep the order
// in which they first appeared in the input. That stability is a documented
// contract of this metric, not an accident of the implementation.
func TopStudents(records []schema.IncidentRecord, n int) []schema.StudentRank {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		student := schema.OrUnknown(r.StudentName)
		if _, ok := counts[student]; !ok {
			order = append(order, student)
		}
		counts[student]++
	}

	rows := make([]schema.StudentRank, 0, len(order))
	for _, student := range order {
		rows = append(rows, schema.StudentRank{Student: student, Incidents: counts[student]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Incidents > rows[j].Incidents
	})

	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// TopAuthors ranks entry authors by logs entered, descending, truncated to
// n, with the same stable tie contract as TopStudents.
func TopAuthors(records []schema.IncidentRecord, n int) []schema.AuthorRank {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		author := schema.OrUnknown(r.EntryAuthor)
		if _, ok := counts[author]; !ok {
			order = append(order, author)
		}
		counts[author]++
	}

	rows := make([]schema.AuthorRank, 0, len(order))
	for _, author := range order {
		rows = append(rows, schema.AuthorRank{Author: author, Logs: counts[author]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Logs > rows[j].Logs
	})

	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// HourlyLocation builds the hour-by-location cross-tab. Rows are grouped by
// hour bucket in chronological order (Unknown group last); within a group,
// locations keep the order of their first occurrence for that hour.
func HourlyLocation(records []schema.IncidentRecord) []schema.HourLocationCount {
	counts := make(map[string]map[string]int)
	locationOrder := make(map[string][]string)
	var hourOrder []string

	for _, r := range records {
		hour := HourBucket(r.IncidentTime)
		location := schema.OrUnknown(r.IncidentLocation)

		if counts[hour] == nil {
			counts[hour] = make(map[string]int)
			hourOrder = append(hourOrder, hour)
		}
		if _, ok := counts[hour][location]; !ok {
			locationOrder[hour] = append(locationOrder[hour], location)
		}
		counts[hour][location]++
	}

	SortHourBuckets(hourOrder)

	var rows []schema.HourLocationCount
	for _, hour := range hourOrder {
		for _, location := range locationOrder[hour] {
			rows = append(rows, schema.HourLocationCount{
				Hour:     hour,
				Location: location,
				Count:    counts[hour][location],
			})
		}
	}
	return rows
}
