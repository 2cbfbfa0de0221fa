package interval

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSubtract(t *testing.T) {
	cases := map[string]struct {
		base     string
		ranges   []string
		expected []string
	}{
		"NothingToRemove": {
			base:     "1..20",
			expected: []string{"1..20"},
		},
		"ClosedFinite": {
			base:     "1..20",
			ranges:   []string{"2..3", "4..6", "7..12"},
			expected: []string{"1...2", "13..20"},
		},
		"ClosedAndOpenFinite": {
			base:     "1..20",
			ranges:   []string{"2..3", "4...6", "7..12"},
			expected: []string{"1...2", "6...7", "13..20"},
		},
		"FiniteFromEndless": {
			base:     "1..",
			ranges:   []string{"2..3", "4...6", "7..12"},
			expected: []string{"1...2", "4...7", "13.."},
		},
		"EndlessFromEndless": {
			base:     "1..",
			ranges:   []string{"10.."},
			expected: []string{"1...10"},
		},
		"LaterEndlessFromEndless": {
			base:     "10..",
			ranges:   []string{"1.."},
			expected: []string{},
		},
		"Unsorted": {
			base:     "1..20",
			ranges:   []string{"7..12", "2..3"},
			expected: []string{"1...2", "4...7", "13..20"},
		},
		"Equal": {
			base:     "1..20",
			ranges:   []string{"1..20"},
			expected: []string{},
		},
		"CoversTail": {
			base:     "1..20",
			ranges:   []string{"5..20"},
			expected: []string{"1...5"},
		},
		"CoversAll": {
			base:     "5..10",
			ranges:   []string{"1..30"},
			expected: []string{},
		},
		"NoOverlap": {
			base:     "1..5",
			ranges:   []string{"7..9"},
			expected: []string{"1..5"},
		},
		"OpenBaseKeepsExcludedEnd": {
			base:     "1...10",
			ranges:   []string{"3..4"},
			expected: []string{"1...3", "5...10"},
		},
		"BeginlessBase": {
			base:     "..10",
			ranges:   []string{"3..4"},
			expected: []string{"...3", "5..10"},
		},
		"InvertedIgnored": {
			base:     "1..10",
			ranges:   []string{"8..2"},
			expected: []string{"1..10"},
		},
		"InvertedBase": {
			base:     "10..1",
			ranges:   []string{"2..3"},
			expected: []string{},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := Subtract(mustParse(t, tc.base), mustParseAll(t, tc.ranges...)...)
			if diff := cmp.Diff(mustParseAll(t, tc.expected...), got, rangeOpts); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestSubtractMergeInverse(t *testing.T) {
	base := mustParse(t, "1..20")
	rest := Subtract(base, base)
	assert.Equal(t, []Range[int]{base}, Merge(append(rest, base)...))

	// remainders never overlap each other
	rest = Subtract(base, mustParseAll(t, "2..3", "4...6", "7..12")...)
	if diff := cmp.Diff(rest, Merge(rest...), rangeOpts); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

func TestSubtractFixedDelta(t *testing.T) {
	alg := Ordered[float64]()
	got := alg.Subtract(Closed(1.0, 2.0), Fixed(0.5), Closed(1.0, 1.25))
	assert.Equal(t, []Range[float64]{Closed(1.75, 2.0)}, got)
}

func TestSubtractTransformDelta(t *testing.T) {
	base := Closed(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2021, 1, 10, 11, 59, 59, 0, time.UTC))
	removed := Closed(time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC), time.Date(2021, 1, 8, 0, 0, 0, 0, time.UTC))

	got := Time.Subtract(base, Transform(func(t time.Time) time.Time { return t.Add(2 * time.Second) }), removed)

	expected := []Range[time.Time]{
		HalfOpen(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC)),
		Closed(time.Date(2021, 1, 8, 0, 0, 2, 0, time.UTC), time.Date(2021, 1, 10, 11, 59, 59, 0, time.UTC)),
	}
	if assert.Len(t, got, len(expected)) {
		for i := range expected {
			assert.True(t, Time.Equal(expected[i], got[i]), "-want %s, +got %s", expected[i], got[i])
		}
	}
}

func TestSubtractAtTypeLimit(t *testing.T) {
	cases := map[string]struct {
		got      []Range[int]
		expected []Range[int]
	}{
		"MaxIntFromEndless": {
			got:      Subtract(Endless(0), Closed(5, math.MaxInt)),
			expected: []Range[int]{HalfOpen(0, 5)},
		},
		"MaxIntTail": {
			got:      Subtract(Closed(0, math.MaxInt), Closed(5, math.MaxInt)),
			expected: []Range[int]{HalfOpen(0, 5)},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.got)
		})
	}

	got := Subtract(Closed[uint8](0, 200), Closed[uint8](10, 255))
	assert.Equal(t, []Range[uint8]{HalfOpen[uint8](0, 10)}, got)

	got = Subtract(Endless[uint8](0), Closed[uint8](10, 255))
	assert.Equal(t, []Range[uint8]{HalfOpen[uint8](0, 10)}, got)
}

func TestSubtractZeroDelta(t *testing.T) {
	alg := Ordered[int]()
	// excluded ends re-enter the base without a step
	got := alg.Subtract(Closed(1, 20), Delta[int]{}, HalfOpen(2, 3))
	assert.Equal(t, []Range[int]{HalfOpen(1, 2), Closed(3, 20)}, got)
	assert.Panics(t, func() { alg.Subtract(Closed(1, 20), Delta[int]{}, Closed(2, 3)) })
}

func TestSubtractDoesNotModifyInput(t *testing.T) {
	removed := mustParseAll(t, "7..12", "2..3")
	_ = Subtract(mustParse(t, "1..20"), removed...)
	assert.Equal(t, mustParseAll(t, "7..12", "2..3"), removed)
}
