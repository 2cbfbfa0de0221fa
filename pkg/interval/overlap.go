package interval

// Overlaps reports whether x and y share at least one point.
//
// Ranges that touch at a single boundary overlap only when the range ending
// there includes its end: 1..3 overlaps 3..5, but 1...3 does not.
func (a Algebra[T]) Overlaps(x, y Range[T]) bool {
	if a.Equal(x, y) {
		return true
	}
	if x.IsEndless() || y.IsEndless() {
		return a.endlessOverlaps(x, y)
	}
	xEndsAtY := x.end.ok && y.begin.ok && a.compare(x.end.v, y.begin.v) == 0
	yEndsAtX := y.end.ok && x.begin.ok && a.compare(y.end.v, x.begin.v) == 0
	if xEndsAtY || yEndsAtX {
		return (xEndsAtY && !x.excludeEnd) || (yEndsAtX && !y.excludeEnd)
	}
	return a.beginBeforeEnd(x.begin, y.end) && a.beginBeforeEnd(y.begin, x.end)
}

// endlessOverlaps handles the case where at least one of x and y is endless.
func (a Algebra[T]) endlessOverlaps(x, y Range[T]) bool {
	switch {
	case x.IsEndless() && y.IsEndless():
		return true
	case x.IsEndless():
		// a bounded range that excludes its end never overlaps an endless one
		return a.beginBeforeEnd(x.begin, y.end) && !y.excludeEnd
	default:
		return a.beginBeforeEnd(y.begin, x.end) && !x.excludeEnd
	}
}
