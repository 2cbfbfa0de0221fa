package interval

// ToClosed returns r with its end included. A range that already includes
// its end is returned unchanged; otherwise the end becomes the value before
// it according to delta. When no value precedes the end, r is empty and is
// returned unchanged.
func (a Algebra[T]) ToClosed(r Range[T], delta Delta[T]) Range[T] {
	if !r.excludeEnd {
		return r
	}
	closed := Range[T]{begin: r.begin}
	if r.end.ok {
		end, ok := delta.predecessor()(r.end.v)
		if !ok {
			return r
		}
		closed.end = Some(end)
	}
	return closed
}
