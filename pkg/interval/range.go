package interval

import (
	"fmt"
	"strings"
)

// Bound is an optional range endpoint. A missing begin means the range is
// beginless, a missing end means it is endless.
type Bound[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Bound[T] { return Bound[T]{v: v, ok: true} }

func None[T any]() Bound[T] { return Bound[T]{} }

// Value returns the bound value and whether it is present.
func (b Bound[T]) Value() (T, bool) { return b.v, b.ok }

func (b Bound[T]) IsSet() bool { return b.ok }

// Range is an immutable range over an ordered type: [begin, end] or
// [begin, end) when excludeEnd is set. Either bound may be absent.
type Range[T any] struct {
	begin      Bound[T]
	end        Bound[T]
	excludeEnd bool
}

func New[T any](begin, end Bound[T], excludeEnd bool) Range[T] {
	return Range[T]{begin: begin, end: end, excludeEnd: excludeEnd}
}

// Closed returns begin..end
func Closed[T any](begin, end T) Range[T] {
	return New(Some(begin), Some(end), false)
}

// HalfOpen returns begin...end
func HalfOpen[T any](begin, end T) Range[T] {
	return New(Some(begin), Some(end), true)
}

// Endless returns begin..
func Endless[T any](begin T) Range[T] {
	return New(Some(begin), None[T](), false)
}

// Beginless returns ..end or ...end
func Beginless[T any](end T, excludeEnd bool) Range[T] {
	return New(None[T](), Some(end), excludeEnd)
}

// Unbounded returns the range without any bound, covering every value.
func Unbounded[T any]() Range[T] {
	return New(None[T](), None[T](), false)
}

// Begin returns the lower bound of r.
func (r Range[T]) Begin() (T, bool) { return r.begin.Value() }

// End returns the upper bound of r.
func (r Range[T]) End() (T, bool) { return r.end.Value() }

func (r Range[T]) ExcludeEnd() bool { return r.excludeEnd }

func (r Range[T]) IsEndless() bool { return !r.end.ok }

func (r Range[T]) IsBeginless() bool { return !r.begin.ok }

// String renders r as a range literal, e.g. 1..3, 1...3, ..3 or 1..
func (r Range[T]) String() string {
	return r.Format(func(v T) string { return fmt.Sprint(v) })
}

// Format renders r like String, using format for the bound values.
func (r Range[T]) Format(format func(T) string) string {
	var sb strings.Builder
	if r.begin.ok {
		sb.WriteString(format(r.begin.v))
	}
	sb.WriteString(r.separator())
	if r.end.ok {
		sb.WriteString(format(r.end.v))
	}
	return sb.String()
}

func (r Range[T]) separator() string {
	if r.excludeEnd {
		return "..."
	}
	return ".."
}
