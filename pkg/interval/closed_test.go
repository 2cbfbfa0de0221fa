package interval

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToClosedRange(t *testing.T) {
	assert.Equal(t, Closed(1, 2), ToClosedRange(Closed(1, 2)))
	assert.Equal(t, Closed(1, 1), ToClosedRange(HalfOpen(1, 2)))
	assert.Equal(t, Beginless(4, false), ToClosedRange(Beginless(5, true)))
	// nothing to decrement on an endless range
	assert.Equal(t, Endless(3), ToClosedRange(New(Some(3), None[int](), true)))
}

func TestToClosedFixedDelta(t *testing.T) {
	got := Ordered[float64]().ToClosed(HalfOpen(1.0, 2.0), Fixed(0.1))
	assert.Equal(t, "1..1.9", got.String())
	assert.Equal(t, Closed(1.0, 1.9), got)
}

func TestToClosedTransformDelta(t *testing.T) {
	r := HalfOpen(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2021, 1, 10, 11, 59, 58, 0, time.UTC))

	got := Time.ToClosed(r, Transform(func(t time.Time) time.Time { return t.Add(2 * time.Second) }))

	expected := Closed(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2021, 1, 10, 12, 0, 0, 0, time.UTC))
	assert.True(t, Time.Equal(expected, got), "-want %s, +got %s", expected, got)
}

func TestToClosedZeroDelta(t *testing.T) {
	alg := Ordered[int]()
	assert.Equal(t, Closed(1, 5), alg.ToClosed(Closed(1, 5), Delta[int]{}))
	assert.Panics(t, func() { alg.ToClosed(HalfOpen(1, 5), Delta[int]{}) })
}

func TestToClosedAtTypeLimit(t *testing.T) {
	// no value precedes 0, the empty range is kept as is
	assert.Equal(t, HalfOpen[uint](0, 0), ToClosedRange(HalfOpen[uint](0, 0)))
	assert.Equal(t, Beginless[uint8](0, true), ToClosedRange(Beginless[uint8](0, true)))
	assert.Equal(t, HalfOpen(math.MinInt, math.MinInt), ToClosedRange(HalfOpen(math.MinInt, math.MinInt)))
	assert.Equal(t, Closed[uint8](0, 254), ToClosedRange(HalfOpen[uint8](0, 255)))
}
