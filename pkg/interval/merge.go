package interval

import (
	"golang.org/x/exp/slices"
)

// Merge returns the minimum, sorted set of ranges that cover rr. Ranges are
// combined only when they overlap; 1...3 and 3..5 stay separate.
//
// The input is not modified. Inverted ranges are treated as empty and
// dropped.
func (a Algebra[T]) Merge(rr ...Range[T]) []Range[T] {
	sorted := a.sortedValid(rr)
	out := make([]Range[T], 0, len(sorted))
	for _, r := range sorted {
		if len(out) == 0 || !a.Overlaps(r, out[len(out)-1]) {
			out = append(out, r)
			continue
		}
		out[len(out)-1] = a.union(out[len(out)-1], r)
	}
	return out
}

// sortedValid returns a copy of rr without inverted ranges, stable sorted by
// begin.
func (a Algebra[T]) sortedValid(rr []Range[T]) []Range[T] {
	sorted := make([]Range[T], 0, len(rr))
	for _, r := range rr {
		if a.IsValid(r) {
			sorted = append(sorted, r)
		}
	}
	slices.SortStableFunc(sorted, a.compareBegin)
	return sorted
}

// union combines overlapping ranges x and y, where x does not begin after y.
func (a Algebra[T]) union(x, y Range[T]) Range[T] {
	u := Range[T]{begin: x.begin, excludeEnd: a.unionExcludesEnd(x, y)}
	switch {
	case x.IsEndless() || y.IsEndless():
		u.end = None[T]()
	case a.compare(x.end.v, y.end.v) > 0:
		u.end = x.end
	default:
		u.end = y.end
	}
	return u
}

func (a Algebra[T]) unionExcludesEnd(x, y Range[T]) bool {
	if x.excludeEnd && y.excludeEnd {
		return true
	}
	if x.IsEndless() || y.IsEndless() {
		// An endless range that excludes its end keeps the flag when joined
		// with a bounded one, so the result stays consistent with its input.
		return (x.excludeEnd && x.IsEndless() && !y.IsEndless()) ||
			(y.excludeEnd && y.IsEndless() && !x.IsEndless())
	}
	return (x.excludeEnd && a.compare(y.end.v, x.end.v) < 0) ||
		(y.excludeEnd && a.compare(x.end.v, y.end.v) < 0)
}
