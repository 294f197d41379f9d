package schedule

// Interval is a half-open [Start, End) range in minutes since midnight.
// The end minute is excluded so back-to-back bookings never conflict.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two half-open intervals intersect.
// [a,b) overlaps [c,d) iff a < d && b > c.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

// OverlapsAny reports whether the candidate range [start, end) intersects
// any of the booked intervals.
func OverlapsAny(start, end int, booked []Interval) bool {
	for _, b := range booked {
		if start < b.End && end > b.Start {
			return true
		}
	}
	return false
}
