package interval

import "golang.org/x/exp/constraints"

// Number is the set of types a Fixed delta can be applied to.
type Number interface {
	constraints.Integer | constraints.Float
}

type deltaKind int

const (
	deltaNone deltaKind = iota
	deltaFixed
	deltaTransform
)

// StepFunc returns the value adjacent to v, or false when there is none
// (v is the last or first value of its type).
type StepFunc[T any] func(v T) (T, bool)

// Delta computes the value adjacent to a boundary when an inclusive bound is
// turned into an exclusive one or the other way round. It is either a fixed
// offset (Fixed) or a transform function (Transform, Steps).
//
// The zero Delta cannot step: Subtract and ToClosed panic when they need to
// step past a boundary with it.
type Delta[T any] struct {
	kind deltaKind
	next StepFunc[T]
	prev StepFunc[T]
}

// Fixed returns a delta which adds d to get the next value and subtracts d
// to get the previous one. A step which wraps around the limits of T has no
// result.
func Fixed[T Number](d T) Delta[T] {
	var zero T
	return Delta[T]{
		kind: deltaFixed,
		next: func(v T) (T, bool) {
			n := v + d
			return n, !(d > zero && n < v) && !(d < zero && n > v)
		},
		prev: func(v T) (T, bool) {
			p := v - d
			return p, !(d > zero && p > v) && !(d < zero && p < v)
		},
	}
}

// Unit is the default delta of numeric ranges, Fixed(1).
func Unit[T Number]() Delta[T] { return Fixed(T(1)) }

// Transform returns a delta applying fn in both directions: fn computes the
// next value after an included end in Subtract, and the new closed end in
// ToClosed.
func Transform[T any](fn func(T) T) Delta[T] {
	step := func(v T) (T, bool) { return fn(v), true }
	return Delta[T]{kind: deltaTransform, next: step, prev: step}
}

// Steps returns a delta using next for the value after an included end and
// prev for the value before an excluded end.
func Steps[T any](next, prev StepFunc[T]) Delta[T] {
	return Delta[T]{kind: deltaTransform, next: next, prev: prev}
}

func (d Delta[T]) IsZero() bool { return d.kind == deltaNone }

// successor returns the function producing the first value after an
// included end.
func (d Delta[T]) successor() StepFunc[T] {
	if d.kind == deltaNone {
		return func(T) (T, bool) { panic("interval: zero Delta cannot step past an included end") }
	}
	return d.next
}

// predecessor returns the function producing the last value before an
// excluded end.
func (d Delta[T]) predecessor() StepFunc[T] {
	if d.kind == deltaNone {
		return func(T) (T, bool) { panic("interval: zero Delta cannot step before an excluded end") }
	}
	return d.prev
}
