package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

func times(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time
	}
	return out
}

func TestGenerateSlotsAlignment(t *testing.T) {
	day := DaySchedule{Open: true, Intervals: []Interval{{Start: 540, End: 780}}} // 09:00-13:00

	slots := GenerateSlots(day, 30, 15, nil)

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].Time)
	// Last start must leave room for the full duration: 12:30, never 12:45.
	assert.Equal(t, "12:30", slots[len(slots)-1].Time)
	assert.Len(t, slots, 15)
	for _, s := range slots {
		assert.False(t, s.Disabled)
	}
}

func TestGenerateSlotsDisablesOverlaps(t *testing.T) {
	day := DaySchedule{Open: true, Intervals: []Interval{{Start: 540, End: 720}}} // 09:00-12:00
	booked := []Interval{{Start: 600, End: 630}}                                  // 10:00-10:30

	slots := GenerateSlots(day, 30, 15, booked)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Disabled
	}

	assert.True(t, byTime["09:45"]) // [09:45,10:15) overlaps
	assert.True(t, byTime["10:00"])
	assert.True(t, byTime["10:15"])
	assert.False(t, byTime["10:30"]) // back-to-back is allowed
	assert.False(t, byTime["09:30"])
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	assert.Nil(t, GenerateSlots(DaySchedule{}, 30, 15, nil))
}

func TestGenerateSlotsDurationLongerThanInterval(t *testing.T) {
	day := DaySchedule{Open: true, Intervals: []Interval{{Start: 540, End: 560}}}
	assert.Empty(t, GenerateSlots(day, 30, 15, nil))
}

func TestGenerateSlotsSplitShift(t *testing.T) {
	// Mon 09:00-13:00 and 17:00-21:00, one confirmed booking 18:00-18:30.
	day := DaySchedule{Open: true, Intervals: []Interval{
		{Start: 540, End: 780},
		{Start: 1020, End: 1260},
	}}
	booked := []Interval{{Start: 1080, End: 1110}}

	slots := GenerateSlots(day, 30, 15, booked)

	ts := times(slots)
	assert.Equal(t, "09:00", ts[0])
	assert.Contains(t, ts, "12:30")
	assert.NotContains(t, ts, "12:45")
	assert.Contains(t, ts, "17:00")
	assert.Equal(t, "20:30", ts[len(ts)-1])

	disabled := make([]string, 0)
	for _, s := range slots {
		if s.Disabled {
			disabled = append(disabled, s.Time)
		}
	}
	assert.Equal(t, []string{"17:45", "18:00", "18:15"}, disabled)
}

func TestDaySelectable(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	open := DaySchedule{Open: true, Intervals: []Interval{{Start: 540, End: 1140}}}

	// Past dates are always disabled, whatever the schedule says.
	yesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.False(t, DaySelectable(yesterday, today, open))

	assert.True(t, DaySelectable(today, today, open))
	assert.True(t, DaySelectable(today.AddDate(0, 0, 1), today, open))
	assert.False(t, DaySelectable(today.AddDate(0, 0, 1), today, DaySchedule{}))
}

func TestBookedIntervalsSkipsFreedStatuses(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: "10:00", DurationMinutes: 30, Status: model.BookingStatusConfirmed},
		{StartTime: "11:00", DurationMinutes: 30, Status: model.BookingStatusPending},
		{StartTime: "12:00", DurationMinutes: 30, Status: model.BookingStatusCancelled},
		{StartTime: "13:00", DurationMinutes: 30, Status: model.BookingStatusCompleted},
	}

	got := BookedIntervals(bookings)
	assert.Equal(t, []Interval{
		{Start: 600, End: 630},
		{Start: 660, End: 690},
	}, got)
}
