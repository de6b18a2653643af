package core

import (
	"fmt"
	"testing"

	"github.com/huangsam/logbook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByGrade(t *testing.T) {
	records := []schema.IncidentRecord{
		{GradeLevel: "9"},
		{GradeLevel: "10"},
		{GradeLevel: "9"},
		{GradeLevel: ""},
		{GradeLevel: "  "},
	}
	rows := CountByGrade(records)
	assert.Equal(t, []schema.GradeCount{
		{Grade: "9", Count: 2},
		{Grade: "10", Count: 1},
		{Grade: schema.Unknown, Count: 2},
	}, rows)
}

func TestCountByGrade_Empty(t *testing.T) {
	assert.Empty(t, CountByGrade(nil))
}

func TestCountByLocation_FirstSeenOrder(t *testing.T) {
	records := []schema.IncidentRecord{
		{IncidentLocation: "Gym"},
		{IncidentLocation: "Cafeteria"},
		{IncidentLocation: "Gym"},
		{IncidentLocation: "Hallway"},
	}
	rows := CountByLocation(records)
	assert.Equal(t, []schema.LocationCount{
		{Location: "Gym", Count: 2},
		{Location: "Cafeteria", Count: 1},
		{Location: "Hallway", Count: 1},
	}, rows)
}

func TestCountByHour(t *testing.T) {
	records := []schema.IncidentRecord{
		{IncidentTime: "2:15 PM"},
		{IncidentTime: "9:05:00 AM"},
		{IncidentTime: "2:45 PM"},
		{IncidentTime: "not a time"},
	}
	rows := CountByHour(records)
	assert.Equal(t, []schema.HourCount{
		{Hour: "9am", Count: 1},
		{Hour: "2pm", Count: 2},
		{Hour: schema.Unknown, Count: 1},
	}, rows)
}

func TestCountByHour_UnknownAlwaysPresent(t *testing.T) {
	records := []schema.IncidentRecord{
		{IncidentTime: "9:05 AM"},
	}
	rows := CountByHour(records)
	require.Len(t, rows, 2)
	assert.Equal(t, schema.HourCount{Hour: schema.Unknown, Count: 0}, rows[1])
}

func TestCountByHour_EmptyCollection(t *testing.T) {
	rows := CountByHour(nil)
	assert.Equal(t, []schema.HourCount{{Hour: schema.Unknown, Count: 0}}, rows)
}

func TestCountByDate(t *testing.T) {
	// Two Mondays (3 and 5 incidents) and one Tuesday (1 incident).
	var records []schema.IncidentRecord
	for range 3 {
		records = append(records, schema.IncidentRecord{IncidentDate: "01/15/2024"})
	}
	for range 5 {
		records = append(records, schema.IncidentRecord{IncidentDate: "01-22-2024"})
	}
	records = append(records, schema.IncidentRecord{IncidentDate: "01/16/2024"})

	breakdown := CountByDate(records)

	// Monday average is (3+5)/2, Tuesday is 1/1; other weekdays are omitted.
	assert.Equal(t, []schema.DayOfWeekAverage{
		{Day: "Monday", Average: 4.0},
		{Day: "Tuesday", Average: 1.0},
	}, breakdown.DayOfWeekAverages)

	// Date counts in first-seen order with hyphen input canonicalized.
	assert.Equal(t, []schema.DateCount{
		{Date: "01/15/2024", Count: 3},
		{Date: "01/22/2024", Count: 5},
		{Date: "01/16/2024", Count: 1},
	}, breakdown.DateCounts)
}

func TestCountByDate_ExcludesBadDates(t *testing.T) {
	records := []schema.IncidentRecord{
		{IncidentDate: "01/15/2024", GradeLevel: "9"},
		{IncidentDate: "", GradeLevel: "9"},
		{IncidentDate: "13/45/2024", GradeLevel: "9"},
	}
	breakdown := CountByDate(records)
	require.Len(t, breakdown.DateCounts, 1)
	assert.Equal(t, 1, breakdown.DateCounts[0].Count)

	// The same records still count in full in the non-date metrics.
	grades := CountByGrade(records)
	require.Len(t, grades, 1)
	assert.Equal(t, 3, grades[0].Count)
}

func TestCountByDate_RoundsAverages(t *testing.T) {
	// One Wednesday with 1 incident, two more Wednesdays with 1 each:
	// 4 incidents over 3 dates averages 1.3333... which rounds to 1.33.
	records := []schema.IncidentRecord{
		{IncidentDate: "01/17/2024"},
		{IncidentDate: "01/17/2024"},
		{IncidentDate: "01/24/2024"},
		{IncidentDate: "01/31/2024"},
	}
	breakdown := CountByDate(records)
	require.Len(t, breakdown.DayOfWeekAverages, 1)
	assert.Equal(t, "Wednesday", breakdown.DayOfWeekAverages[0].Day)
	assert.Equal(t, 1.33, breakdown.DayOfWeekAverages[0].Average)
}

func TestTopStudents(t *testing.T) {
	var records []schema.IncidentRecord
	// 20 students, student i has i+1 incidents
	for i := range 20 {
		for range i + 1 {
			records = append(records, schema.IncidentRecord{StudentName: fmt.Sprintf("Student %02d", i)})
		}
	}
	rows := TopStudents(records, 15)
	require.Len(t, rows, 15)
	assert.Equal(t, "Student 19", rows[0].Student)
	assert.Equal(t, 20, rows[0].Incidents)
	assert.Equal(t, 6, rows[14].Incidents)
}

func TestTopStudents_TieStability(t *testing.T) {
	// Equal counts keep first-appearance order.
	records := []schema.IncidentRecord{
		{StudentName: "Zoe"},
		{StudentName: "Adam"},
		{StudentName: "Mia"},
		{StudentName: "Zoe"},
		{StudentName: "Adam"},
		{StudentName: "Mia"},
	}
	rows := TopStudents(records, 10)
	assert.Equal(t, []schema.StudentRank{
		{Student: "Zoe", Incidents: 2},
		{Student: "Adam", Incidents: 2},
		{Student: "Mia", Incidents: 2},
	}, rows)
}

func TestTopAuthors(t *testing.T) {
	records := []schema.IncidentRecord{
		{EntryAuthor: "Ms. Lee"},
		{EntryAuthor: "Mr. Jones"},
		{EntryAuthor: "Ms. Lee"},
		{EntryAuthor: ""},
	}
	rows := TopAuthors(records, 2)
	assert.Equal(t, []schema.AuthorRank{
		{Author: "Ms. Lee", Logs: 2},
		{Author: "Mr. Jones", Logs: 1},
	}, rows)
}

func TestHourlyLocation(t *testing.T) {
	records := []schema.IncidentRecord{
		{IncidentTime: "2:00 PM", IncidentLocation: "Gym"},
		{IncidentTime: "9:00 AM", IncidentLocation: "Cafeteria"},
		{IncidentTime: "2:30 PM", IncidentLocation: "Hallway"},
		{IncidentTime: "2:45 PM", IncidentLocation: "Gym"},
		{IncidentTime: "", IncidentLocation: "Library"},
	}
	rows := HourlyLocation(records)
	assert.Equal(t, []schema.HourLocationCount{
		{Hour: "9am", Location: "Cafeteria", Count: 1},
		{Hour: "2pm", Location: "Gym", Count: 2},
		{Hour: "2pm", Location: "Hallway", Count: 1},
		{Hour: schema.Unknown, Location: "Library", Count: 1},
	}, rows)
}

func TestMetricFunctions_DoNotMutateInput(t *testing.T) {
	records := []schema.IncidentRecord{
		{StudentName: "Alice", GradeLevel: "", IncidentTime: "bad", IncidentDate: "bad"},
	}
	want := records[0]

	CountByGrade(records)
	CountByHour(records)
	CountByDate(records)
	TopStudents(records, 5)
	HourlyLocation(records)

	assert.Equal(t, want, records[0])
}
