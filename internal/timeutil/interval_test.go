package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinuteRanges(t *testing.T) {
	assert.Equal(t, []Interval{{600, 660}}, ToMinuteRanges(600, 660))
	assert.Equal(t, []Interval{{1320, 1440}, {0, 360}}, ToMinuteRanges(1320, 360))
	assert.Equal(t, []Interval{{600, 1440}, {0, 600}}, ToMinuteRanges(600, 600))
}

func TestHasOverlap(t *testing.T) {
	assert.True(t, HasOverlap([]Interval{{600, 660}}, []Interval{{650, 700}}))
	assert.False(t, HasOverlap([]Interval{{600, 660}}, []Interval{{660, 700}}))
	assert.False(t, HasOverlap(nil, []Interval{{1, 2}}))
}

func TestAreFullyCovered(t *testing.T) {
	covers := []Interval{{480, 1200}}
	assert.True(t, AreFullyCovered([]Interval{{600, 660}}, covers))
	assert.False(t, AreFullyCovered([]Interval{{600, 1300}}, covers))

	// Wrap-around shift covering a wrap-around service: 22:00-06:00 shift,
	// 22:00-00:30 service.
	wrapShift := []Interval{{1320, 1440}, {0, 360}}
	wrapService := ToMinuteRanges(1320, 30)
	assert.True(t, AreFullyCovered(wrapService, wrapShift))
}

func TestAreFullyCoveredRejectsCrossShiftStitching(t *testing.T) {
	// Two back-to-back shifts that together span the service, but no single
	// shift covers it alone — must fail per spec semantics.
	covers := []Interval{{480, 600}, {600, 720}}
	assert.False(t, AreFullyCovered([]Interval{{500, 650}}, covers))
}

func TestHasAvailableTime(t *testing.T) {
	shifts := []Interval{{0, 480}, {540, 1020}}
	assigned := []Interval{{60, 120}, {300, 360}, {600, 660}}
	assert.True(t, HasAvailableTime(shifts, assigned))

	fullyBooked := []Interval{{0, 480}}
	assert.False(t, HasAvailableTime(fullyBooked, []Interval{{0, 480}}))
}

func TestAvailableIntervals(t *testing.T) {
	shifts := []Interval{{0, 720}}
	assigned := []Interval{{0, 120}, {300, 360}}
	got := AvailableIntervals(shifts, assigned)
	assert.Equal(t, []Interval{{120, 300}, {360, 720}}, got)
}
