package interval

import (
	"time"

	"golang.org/x/exp/constraints"
)

// CompareFunc returns -1 if a < b, +1 if a > b and 0 if they are equal.
type CompareFunc[T any] func(a, b T) int

// Algebra implements the range operations for any totally ordered type,
// given its comparison function. An Algebra holds no state besides the
// comparison and is safe for concurrent use.
type Algebra[T any] struct {
	compare CompareFunc[T]
}

func NewAlgebra[T any](compare CompareFunc[T]) Algebra[T] {
	return Algebra[T]{compare: compare}
}

// Ordered returns the algebra of a built-in ordered type.
func Ordered[T constraints.Ordered]() Algebra[T] {
	return NewAlgebra[T](compareOrdered[T])
}

// Time is the algebra of time.Time ranges.
var Time = NewAlgebra[time.Time](time.Time.Compare)

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether x and y are structurally equal: same bounds and the
// same excludeEnd flag.
func (a Algebra[T]) Equal(x, y Range[T]) bool {
	return a.boundEqual(x.begin, y.begin) &&
		a.boundEqual(x.end, y.end) &&
		x.excludeEnd == y.excludeEnd
}

func (a Algebra[T]) boundEqual(x, y Bound[T]) bool {
	if x.ok != y.ok {
		return false
	}
	return !x.ok || a.compare(x.v, y.v) == 0
}

// IsValid returns false for inverted ranges, where begin > end. Inverted
// ranges are treated as empty by Merge and Subtract.
func (a Algebra[T]) IsValid(r Range[T]) bool {
	if !r.begin.ok || !r.end.ok {
		return true
	}
	return a.compare(r.begin.v, r.end.v) <= 0
}

// beginLess orders lower bounds, an absent begin sorts before any value.
func (a Algebra[T]) beginLess(x, y Bound[T]) bool {
	switch {
	case !y.ok:
		return false
	case !x.ok:
		return true
	}
	return a.compare(x.v, y.v) < 0
}

func (a Algebra[T]) compareBegin(x, y Range[T]) int {
	switch {
	case a.beginLess(x.begin, y.begin):
		return -1
	case a.beginLess(y.begin, x.begin):
		return 1
	}
	return 0
}

// beginBeforeEnd reports begin <= end, where begin may be absent and end is
// present.
func (a Algebra[T]) beginBeforeEnd(begin Bound[T], end Bound[T]) bool {
	return !begin.ok || a.compare(begin.v, end.v) <= 0
}
