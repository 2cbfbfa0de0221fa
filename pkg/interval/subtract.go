package interval

// Subtract removes the points covered by rr from base and returns what is
// left, in ascending order. delta gives the first value after the end of a
// removed range which includes its end, so removing a range which includes
// its end needs a non-zero delta.
//
// Inverted subtrahends are ignored; an inverted base leaves nothing.
func (a Algebra[T]) Subtract(base Range[T], delta Delta[T], rr ...Range[T]) []Range[T] {
	if !a.IsValid(base) {
		return []Range[T]{}
	}
	next := delta.successor()
	out := []Range[T]{base}
	for _, r := range a.sortedValid(rr) {
		if len(out) == 0 {
			break
		}
		last := out[len(out)-1]
		if !a.Overlaps(last, r) {
			continue
		}
		out = append(out[:len(out)-1], a.split(last, r, next)...)
	}
	return out
}

// split subtracts y from the overlapping range x, leaving zero, one or two
// ranges.
func (a Algebra[T]) split(x, y Range[T], next StepFunc[T]) []Range[T] {
	if a.Equal(x, y) {
		return nil
	}
	var out []Range[T]
	if a.beginLess(x.begin, y.begin) {
		out = append(out, Range[T]{begin: x.begin, end: y.begin, excludeEnd: true})
	}
	// an endless y removes the whole tail of x
	if y.IsEndless() {
		return out
	}
	nextBegin := y.end.v
	if !y.excludeEnd {
		var ok bool
		// nothing follows the last value of T
		if nextBegin, ok = next(y.end.v); !ok {
			return out
		}
	}
	if x.IsEndless() || a.compare(nextBegin, x.end.v) < 0 {
		out = append(out, Range[T]{begin: Some(nextBegin), end: x.end, excludeEnd: x.excludeEnd})
	}
	return out
}
