package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

// 2025-06-16 is a Monday.
var monday = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func weekly(dow int, open bool, from, to string) model.WeeklyHour {
	return model.WeeklyHour{DayOfWeek: dow, IsOpen: open, OpenTime: from, CloseTime: to}
}

func TestResolveDefaultFallback(t *testing.T) {
	day := Resolve(monday, Sources{})

	require.True(t, day.Open)
	require.Len(t, day.Intervals, 1)
	assert.Equal(t, Interval{Start: 9 * 60, End: 19 * 60}, day.Intervals[0])
}

func TestResolveWeeklyRow(t *testing.T) {
	src := Sources{Weekly: []model.WeeklyHour{weekly(0, true, "10:00", "18:00")}}

	day := Resolve(monday, src)
	require.True(t, day.Open)
	assert.Equal(t, []Interval{{Start: 600, End: 1080}}, day.Intervals)
}

func TestResolveWeeklyClosedDay(t *testing.T) {
	src := Sources{Weekly: []model.WeeklyHour{weekly(0, false, "", "")}}

	day := Resolve(monday, src)
	assert.False(t, day.Open)
	assert.Empty(t, day.Intervals)
}

func TestResolveConfiguredButUncoveredDayIsClosed(t *testing.T) {
	// Hours exist for Tuesday only; Monday gets no default fallback.
	src := Sources{Weekly: []model.WeeklyHour{weekly(1, true, "09:00", "17:00")}}

	day := Resolve(monday, src)
	assert.False(t, day.Open)
}

func TestResolveHourSlotsSupersedeWeekly(t *testing.T) {
	src := Sources{
		Weekly: []model.WeeklyHour{weekly(0, true, "08:00", "22:00")},
		WeeklySlots: []model.HourSlot{
			{DayOfWeek: 0, OpenTime: "17:00", CloseTime: "21:00", SortOrder: 1, IsActive: true},
			{DayOfWeek: 0, OpenTime: "09:00", CloseTime: "13:00", SortOrder: 0, IsActive: true},
		},
	}

	day := Resolve(monday, src)
	require.True(t, day.Open)
	// Only the slot rows, in sort order; the weekly range is ignored.
	assert.Equal(t, []Interval{
		{Start: 540, End: 780},
		{Start: 1020, End: 1260},
	}, day.Intervals)
}

func TestResolveInactiveHourSlotsIgnored(t *testing.T) {
	src := Sources{
		Weekly: []model.WeeklyHour{weekly(0, true, "08:00", "22:00")},
		WeeklySlots: []model.HourSlot{
			{DayOfWeek: 0, OpenTime: "09:00", CloseTime: "13:00", IsActive: false},
		},
	}

	day := Resolve(monday, src)
	require.True(t, day.Open)
	assert.Equal(t, []Interval{{Start: 480, End: 1320}}, day.Intervals)
}

func TestResolveSpecialDayClosureWinsOverWeekly(t *testing.T) {
	src := Sources{
		Weekly: []model.WeeklyHour{weekly(0, true, "09:00", "19:00")},
		SpecialDays: []model.SpecialDay{
			{Base: model.Base{ID: uuid.New()}, Date: monday, IsOpen: false, Note: "holiday"},
		},
	}

	day := Resolve(monday, src)
	assert.False(t, day.Open)
}

func TestResolveSpecialDayRange(t *testing.T) {
	src := Sources{
		Weekly: []model.WeeklyHour{weekly(0, true, "09:00", "19:00")},
		SpecialDays: []model.SpecialDay{
			{Base: model.Base{ID: uuid.New()}, Date: monday, IsOpen: true, OpenTime: "12:00", CloseTime: "16:00"},
		},
	}

	day := Resolve(monday, src)
	require.True(t, day.Open)
	assert.Equal(t, []Interval{{Start: 720, End: 960}}, day.Intervals)
}

func TestResolveSpecialDaySlotsWinOverSpecialDayRange(t *testing.T) {
	sdID := uuid.New()
	src := Sources{
		SpecialDays: []model.SpecialDay{
			{Base: model.Base{ID: sdID}, Date: monday, IsOpen: true, OpenTime: "08:00", CloseTime: "20:00"},
		},
		SpecialSlots: []model.SpecialDaySlot{
			{SpecialDayID: sdID, OpenTime: "15:00", CloseTime: "18:00", SortOrder: 1},
			{SpecialDayID: sdID, OpenTime: "10:00", CloseTime: "12:00", SortOrder: 0},
		},
	}

	day := Resolve(monday, src)
	require.True(t, day.Open)
	// Slot set only, never unioned with the parent range.
	assert.Equal(t, []Interval{
		{Start: 600, End: 720},
		{Start: 900, End: 1080},
	}, day.Intervals)
}

func TestResolveSpecialDayOnlyAffectsItsDate(t *testing.T) {
	src := Sources{
		Weekly: []model.WeeklyHour{
			weekly(0, true, "09:00", "19:00"),
			weekly(1, true, "09:00", "19:00"),
		},
		SpecialDays: []model.SpecialDay{
			{Base: model.Base{ID: uuid.New()}, Date: monday, IsOpen: false},
		},
	}

	tuesday := monday.AddDate(0, 0, 1)
	assert.False(t, Resolve(monday, src).Open)
	assert.True(t, Resolve(tuesday, src).Open)
}
