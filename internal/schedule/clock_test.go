package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"morning", "09:00", 540},
		{"afternoon", "13:30", 810},
		{"midnight", "00:00", 0},
		{"end of day", "23:45", 1425},
		{"missing minutes", "9", 540},
		{"hour with colon only", "9:", 540},
		{"whitespace", " 10:15 ", 615},
		{"garbage", "abc", 0},
		{"garbage minutes", "10:xx", 600},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseClock(tt.in))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "13:05", FormatClock(785))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:45", FormatClock(1425))
}

func TestWeekdayMondayZero(t *testing.T) {
	// 2025-06-16 is a Monday.
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, Weekday(monday))
	assert.Equal(t, 5, Weekday(monday.AddDate(0, 0, 5))) // Saturday
	assert.Equal(t, 6, Weekday(monday.AddDate(0, 0, 6))) // Sunday
}
