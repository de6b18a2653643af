package core

import (
	"testing"

	"github.com/huangsam/logbook/schema"
	"github.com/stretchr/testify/assert"
)

func TestHourBucket(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"twelve hour with seconds", "9:05:30 AM", "9am"},
		{"twelve hour without seconds", "2:15 PM", "2pm"},
		{"twenty four hour", "14:05", "2pm"},
		{"twenty four hour morning", "09:30", "9am"},
		{"lowercase meridiem", "9:05 am", "9am"},
		{"mixed case meridiem", "11:45 Pm", "11pm"},
		{"noon", "12:00 PM", "12pm"},
		{"midnight", "12:30 AM", "12am"},
		{"midnight twenty four hour", "00:10", "12am"},
		{"surrounding whitespace", "  3:04 PM  ", "3pm"},
		{"empty", "", schema.Unknown},
		{"whitespace only", "   ", schema.Unknown},
		{"garbage", "banana", schema.Unknown},
		{"hour out of range", "25:00", schema.Unknown},
		{"partial time", "9:", schema.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HourBucket(tt.raw))
		})
	}
}

func TestSortHourBuckets(t *testing.T) {
	labels := []string{"9am", "2pm", "11am", "Unknown", "12pm"}
	SortHourBuckets(labels)
	assert.Equal(t, []string{"9am", "11am", "12pm", "2pm", "Unknown"}, labels)
}

func TestSortHourBuckets_MidnightFirst(t *testing.T) {
	labels := []string{"11pm", "12am", "1am", "12pm", "11am"}
	SortHourBuckets(labels)
	assert.Equal(t, []string{"12am", "1am", "11am", "12pm", "11pm"}, labels)
}

func TestHourBucketRank_InvalidLabels(t *testing.T) {
	// Anything that is not a real bucket label sorts with Unknown, last.
	labels := []string{"13pm", "3pm", "0am", "1am"}
	SortHourBuckets(labels)
	assert.Equal(t, []string{"1am", "3pm", "13pm", "0am"}, labels)
}
