package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrUnknown(t *testing.T) {
	assert.Equal(t, "9", OrUnknown("9"))
	assert.Equal(t, "Gym", OrUnknown("  Gym  "))
	assert.Equal(t, Unknown, OrUnknown(""))
	assert.Equal(t, Unknown, OrUnknown("   "))
}

func TestBuildingOrUnknown(t *testing.T) {
	assert.Equal(t, "North High", BuildingOrUnknown("North High"))
	assert.Equal(t, UnknownBuilding, BuildingOrUnknown(""))
	assert.Equal(t, UnknownBuilding, BuildingOrUnknown("  "))
}

func TestRecordValues_MatchColumns(t *testing.T) {
	r := IncidentRecord{StudentNumber: "1001", StudentSchool: "North High"}
	values := r.Values()
	assert.Len(t, values, len(RecordColumns))
	assert.Equal(t, "1001", values[0])
	assert.Equal(t, "North High", values[len(values)-1])
}

func TestMetricOrder(t *testing.T) {
	// The render order of summary keys is a fixed contract.
	assert.Equal(t, []string{
		MetricGrade,
		MetricLocation,
		MetricHour,
		MetricDate,
		MetricSubtype,
		MetricTopStudents,
		MetricTopAuthors,
		MetricLocHour,
	}, MetricOrder)
}

func TestMetricResult(t *testing.T) {
	single := MetricResult{Single: &NamedTable{Name: "x", Rows: [][]string{{"a", "1"}}}}
	assert.False(t, single.Empty())
	assert.Len(t, single.Tables(), 1)

	empty := MetricResult{Single: &NamedTable{Name: "x"}}
	assert.True(t, empty.Empty())

	pair := MetricResult{Pair: []NamedTable{{Name: "a"}, {Name: "b", Rows: [][]string{{"r"}}}}}
	assert.False(t, pair.Empty())
	assert.Len(t, pair.Tables(), 2)
}

func TestMetricsSetLookup(t *testing.T) {
	set := MetricsSet{
		{Name: MetricGrade, Result: MetricResult{Single: &NamedTable{Name: MetricGrade}}},
	}
	_, ok := set.Lookup(MetricGrade)
	assert.True(t, ok)
	_, ok = set.Lookup(MetricHour)
	assert.False(t, ok)
}
