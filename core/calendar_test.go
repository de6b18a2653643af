package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // canonical form, empty means unparseable
	}{
		{"slash separated", "01/15/2024", "01/15/2024"},
		{"hyphen separated", "01-15-2024", "01/15/2024"},
		{"surrounding whitespace", " 01/15/2024 ", "01/15/2024"},
		{"empty", "", ""},
		{"whitespace only", "  ", ""},
		{"month out of range", "13/45/2024", ""},
		{"wrong order", "2024/01/15", ""},
		{"garbage", "yesterday", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseCalendarDate(tt.raw)
			if tt.want == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, FormatCalendarDate(parsed))
		})
	}
}

func TestParseCalendarDate_SeparatorsAgree(t *testing.T) {
	slash, ok := ParseCalendarDate("03/07/2024")
	require.True(t, ok)
	hyphen, ok := ParseCalendarDate("03-07-2024")
	require.True(t, ok)
	assert.Equal(t, slash, hyphen)
}

func TestDayOfWeek(t *testing.T) {
	// 2024-01-15 was a Monday
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday", DayOfWeek(d))

	d = time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sunday", DayOfWeek(d))
}
