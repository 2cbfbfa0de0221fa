// Package interval implements an algebra over ordered ranges: overlap
// testing, merging overlapping ranges and subtracting ranges from a base
// range. Ranges may be closed (1..3), half-open (1...3), beginless (..3) or
// endless (1..).
//
// The functions in this file cover the built-in ordered types. Other types,
// such as time.Time, use an Algebra built from a comparison function.
package interval

import "golang.org/x/exp/constraints"

func Overlaps[T constraints.Ordered](a, b Range[T]) bool {
	return Ordered[T]().Overlaps(a, b)
}

func Merge[T constraints.Ordered](rr ...Range[T]) []Range[T] {
	return Ordered[T]().Merge(rr...)
}

// Subtract removes rr from base, using a unit delta to step past removed
// ranges that include their end.
func Subtract[T Number](base Range[T], rr ...Range[T]) []Range[T] {
	return Ordered[T]().Subtract(base, Unit[T](), rr...)
}

// ToClosedRange converts r to a range including its end, using a unit delta.
func ToClosedRange[T Number](r Range[T]) Range[T] {
	return Ordered[T]().ToClosed(r, Unit[T]())
}
