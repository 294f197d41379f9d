package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsAny(t *testing.T) {
	booked := []Interval{{Start: 600, End: 630}} // 10:00-10:30

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"back-to-back after is allowed", 630, 660, false},
		{"back-to-back before is allowed", 570, 600, false},
		{"partial overlap", 615, 645, true},
		{"contained", 605, 625, true},
		{"containing", 570, 660, true},
		{"identical", 600, 630, true},
		{"disjoint", 700, 730, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapsAny(tt.start, tt.end, booked))
		})
	}
}

func TestOverlapsAnyMultipleBookings(t *testing.T) {
	booked := []Interval{
		{Start: 540, End: 570},
		{Start: 720, End: 780},
	}

	assert.False(t, OverlapsAny(570, 600, booked))
	assert.True(t, OverlapsAny(765, 795, booked))
	assert.False(t, OverlapsAny(780, 810, booked))
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Start: 600, End: 630}
	assert.True(t, a.Overlaps(Interval{Start: 615, End: 700}))
	assert.False(t, a.Overlaps(Interval{Start: 630, End: 700}))
}
