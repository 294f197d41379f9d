package schedule

import (
	"time"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

// DefaultStepMinutes is the grid slot starts are aligned to.
const DefaultStepMinutes = 15

// Slot is one bookable start time, rendering-ready for a time picker.
type Slot struct {
	Time     string `json:"time"`
	Disabled bool   `json:"disabled"`
}

// GenerateSlots emits every candidate start time for the resolved day.
// Starts step from each interval's open minute and a slot is offered
// only while its full duration fits before the close minute. Slots that
// collide with a booked interval are kept but marked disabled so the
// picker can render them greyed out.
func GenerateSlots(day DaySchedule, durationMinutes, stepMinutes int, booked []Interval) []Slot {
	if !day.Open || durationMinutes <= 0 {
		return nil
	}
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}

	var slots []Slot
	for _, iv := range day.Intervals {
		for t := iv.Start; t+durationMinutes <= iv.End; t += stepMinutes {
			slots = append(slots, Slot{
				Time:     FormatClock(t),
				Disabled: OverlapsAny(t, t+durationMinutes, booked),
			})
		}
	}
	return slots
}

// DaySelectable reports whether a calendar date should be clickable:
// not in the past relative to today, and resolved open.
func DaySelectable(date, today time.Time, day DaySchedule) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(t) && day.Open
}

// BookedIntervals converts bookings to minute intervals, keeping only
// statuses that occupy a slot. Cancelled and completed rows free theirs.
func BookedIntervals(bookings []model.Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.Status.Occupies() {
			continue
		}
		start := ParseClock(b.StartTime)
		intervals = append(intervals, Interval{Start: start, End: start + b.DurationMinutes})
	}
	return intervals
}
