package iprange

import (
	"net/netip"

	"github.com/henderiw/rangealgebra/pkg/interval"
	"go4.org/netipx"
)

// Addr is the algebra of IP address ranges. IPv4 addresses sort before IPv6
// addresses.
var Addr = interval.NewAlgebra[netip.Addr](netip.Addr.Compare)

// Step moves to the adjacent address. There is no step past the first or
// last address of a family.
var Step = interval.Steps[netip.Addr](
	func(a netip.Addr) (netip.Addr, bool) {
		n := a.Next()
		return n, n.IsValid()
	},
	func(a netip.Addr) (netip.Addr, bool) {
		p := a.Prev()
		return p, p.IsValid()
	},
)

// ToRange returns the closed range covered by r.
func ToRange(r netipx.IPRange) interval.Range[netip.Addr] {
	return interval.Closed(r.From(), r.To())
}

// FromRange converts a bounded range back to an IPRange. An excluded end is
// replaced by the address before it. It returns false for unbounded or
// empty ranges.
func FromRange(r interval.Range[netip.Addr]) (netipx.IPRange, bool) {
	from, ok := r.Begin()
	if !ok {
		return netipx.IPRange{}, false
	}
	to, ok := r.End()
	if !ok {
		return netipx.IPRange{}, false
	}
	if r.ExcludeEnd() {
		if to == from {
			return netipx.IPRange{}, false
		}
		r = Addr.ToClosed(r, Step)
		if r.ExcludeEnd() {
			return netipx.IPRange{}, false
		}
		to, _ = r.End()
	}
	ipRange := netipx.IPRangeFrom(from, to)
	return ipRange, ipRange.IsValid()
}

func Overlaps(a, b netipx.IPRange) bool {
	return Addr.Overlaps(ToRange(a), ToRange(b))
}

// Merge returns the sorted set of ranges covering rr, combining overlapping
// ranges. Invalid ranges are dropped.
func Merge(rr ...netipx.IPRange) []netipx.IPRange {
	return fromRanges(Addr.Merge(toRanges(rr)...))
}

// Free returns the ranges of pool not covered by any of used.
func Free(pool netipx.IPRange, used ...netipx.IPRange) []netipx.IPRange {
	if !pool.IsValid() {
		return []netipx.IPRange{}
	}
	// subtract from [from, to+1) so a free last address is not dropped
	base := interval.Endless(pool.From())
	if end := pool.To().Next(); end.IsValid() {
		base = interval.HalfOpen(pool.From(), end)
	}
	inPool := make([]interval.Range[netip.Addr], 0, len(used))
	for _, u := range used {
		if u.IsValid() && Overlaps(pool, u) {
			inPool = append(inPool, ToRange(u))
		}
	}
	rest := Addr.Subtract(base, Step, inPool...)
	out := make([]netipx.IPRange, 0, len(rest))
	for _, r := range rest {
		if r.IsEndless() {
			from, _ := r.Begin()
			r = interval.Closed(from, pool.To())
		}
		if ipRange, ok := FromRange(r); ok {
			out = append(out, ipRange)
		}
	}
	return out
}

func toRanges(rr []netipx.IPRange) []interval.Range[netip.Addr] {
	out := make([]interval.Range[netip.Addr], 0, len(rr))
	for _, r := range rr {
		if r.IsValid() {
			out = append(out, ToRange(r))
		}
	}
	return out
}

func fromRanges(rr []interval.Range[netip.Addr]) []netipx.IPRange {
	out := make([]netipx.IPRange, 0, len(rr))
	for _, r := range rr {
		if ipRange, ok := FromRange(r); ok {
			out = append(out, ipRange)
		}
	}
	return out
}
