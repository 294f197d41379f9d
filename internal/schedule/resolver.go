package schedule

import (
	"sort"
	"time"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

// Default hours offered when a website has configured nothing at all,
// so a freshly onboarded business is bookable out of the box.
const (
	DefaultOpenMinute  = 9 * 60
	DefaultCloseMinute = 19 * 60
)

// DaySchedule is the resolved set of open intervals for one calendar date.
type DaySchedule struct {
	Open      bool
	Intervals []Interval
}

// Sources holds every schedule row configured for a website. The
// resolver treats them as four ranked layers; exactly one layer decides
// a given date, they never merge.
type Sources struct {
	Weekly       []model.WeeklyHour
	WeeklySlots  []model.HourSlot
	SpecialDays  []model.SpecialDay
	SpecialSlots []model.SpecialDaySlot
}

// A layer inspects the sources for one date and either claims it
// (returning the schedule) or passes to the next layer (returning nil).
type layer func(date time.Time, src Sources) *DaySchedule

// Resolve returns the open intervals for date. Precedence, strictly:
// special-day slots, special-day single range, recurring hour slots,
// weekly single range, then the permissive default when the website has
// no hours configured at all.
func Resolve(date time.Time, src Sources) DaySchedule {
	layers := []layer{specialDayLayer, recurringSlotLayer, weeklyLayer}
	for _, l := range layers {
		if ds := l(date, src); ds != nil {
			return *ds
		}
	}

	if len(src.Weekly) == 0 && len(src.WeeklySlots) == 0 {
		return DaySchedule{
			Open:      true,
			Intervals: []Interval{{Start: DefaultOpenMinute, End: DefaultCloseMinute}},
		}
	}

	// Hours are configured but nothing covers this weekday.
	return DaySchedule{}
}

func specialDayLayer(date time.Time, src Sources) *DaySchedule {
	for _, sd := range src.SpecialDays {
		if !SameDate(sd.Date, date) {
			continue
		}
		if !sd.IsOpen {
			return &DaySchedule{}
		}

		var slots []model.SpecialDaySlot
		for _, ss := range src.SpecialSlots {
			if ss.SpecialDayID == sd.ID {
				slots = append(slots, ss)
			}
		}
		if len(slots) > 0 {
			sort.SliceStable(slots, func(i, j int) bool {
				return slots[i].SortOrder < slots[j].SortOrder
			})
			intervals := make([]Interval, 0, len(slots))
			for _, ss := range slots {
				intervals = append(intervals, Interval{
					Start: ParseClock(ss.OpenTime),
					End:   ParseClock(ss.CloseTime),
				})
			}
			return &DaySchedule{Open: true, Intervals: intervals}
		}

		return &DaySchedule{Open: true, Intervals: []Interval{{
			Start: ParseClock(sd.OpenTime),
			End:   ParseClock(sd.CloseTime),
		}}}
	}
	return nil
}

func recurringSlotLayer(date time.Time, src Sources) *DaySchedule {
	dow := Weekday(date)

	var slots []model.HourSlot
	for _, hs := range src.WeeklySlots {
		if hs.DayOfWeek == dow && hs.IsActive {
			slots = append(slots, hs)
		}
	}
	if len(slots) == 0 {
		return nil
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].SortOrder < slots[j].SortOrder
	})
	intervals := make([]Interval, 0, len(slots))
	for _, hs := range slots {
		intervals = append(intervals, Interval{
			Start: ParseClock(hs.OpenTime),
			End:   ParseClock(hs.CloseTime),
		})
	}
	return &DaySchedule{Open: true, Intervals: intervals}
}

func weeklyLayer(date time.Time, src Sources) *DaySchedule {
	dow := Weekday(date)
	for _, wh := range src.Weekly {
		if wh.DayOfWeek != dow {
			continue
		}
		if !wh.IsOpen {
			return &DaySchedule{}
		}
		return &DaySchedule{Open: true, Intervals: []Interval{{
			Start: ParseClock(wh.OpenTime),
			End:   ParseClock(wh.CloseTime),
		}}}
	}
	return nil
}
