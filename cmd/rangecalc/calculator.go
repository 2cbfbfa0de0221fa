package main

import (
	"fmt"
	"net/netip"
	"strconv"
	"time"

	"github.com/henderiw/rangealgebra/pkg/interval"
	"github.com/henderiw/rangealgebra/pkg/iprange"
)

// calculator runs the range operations on textual ranges of one element
// type.
type calculator interface {
	Overlaps(a, b string) (bool, error)
	Merge(rr []string) ([]string, error)
	Subtract(base string, rr []string) ([]string, error)
	Closed(r string) (string, error)
}

type calc[T any] struct {
	alg    interval.Algebra[T]
	parse  interval.ParseFunc[T]
	format func(T) string
	delta  interval.Delta[T]
}

func newCalculator(c *config) (calculator, error) {
	switch c.Type {
	case typeInt:
		d := 1
		if c.Delta != "" {
			var err error
			if d, err = strconv.Atoi(c.Delta); err != nil {
				return nil, fmt.Errorf("invalid int delta %q: %w", c.Delta, err)
			}
		}
		return &calc[int]{
			alg:    interval.Ordered[int](),
			parse:  strconv.Atoi,
			format: strconv.Itoa,
			delta:  interval.Fixed(d),
		}, nil
	case typeFloat:
		d := 1.0
		if c.Delta != "" {
			var err error
			if d, err = strconv.ParseFloat(c.Delta, 64); err != nil {
				return nil, fmt.Errorf("invalid float delta %q: %w", c.Delta, err)
			}
		}
		return &calc[float64]{
			alg:    interval.Ordered[float64](),
			parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
			format: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
			delta:  interval.Fixed(d),
		}, nil
	case typeTime:
		d := time.Second
		if c.Delta != "" {
			var err error
			if d, err = time.ParseDuration(c.Delta); err != nil {
				return nil, fmt.Errorf("invalid time delta %q: %w", c.Delta, err)
			}
		}
		layout := c.Layout
		return &calc[time.Time]{
			alg:    interval.Time,
			parse:  func(s string) (time.Time, error) { return time.Parse(layout, s) },
			format: func(t time.Time) string { return t.Format(layout) },
			delta: interval.Steps[time.Time](
				func(t time.Time) (time.Time, bool) { return t.Add(d), true },
				func(t time.Time) (time.Time, bool) { return t.Add(-d), true },
			),
		}, nil
	case typeIP:
		return &calc[netip.Addr]{
			alg:    iprange.Addr,
			parse:  netip.ParseAddr,
			format: netip.Addr.String,
			delta:  iprange.Step,
		}, nil
	}
	return nil, fmt.Errorf("unknown range type %q", c.Type)
}

func (r *calc[T]) Overlaps(a, b string) (bool, error) {
	ra, err := interval.Parse(a, r.parse)
	if err != nil {
		return false, err
	}
	rb, err := interval.Parse(b, r.parse)
	if err != nil {
		return false, err
	}
	return r.alg.Overlaps(ra, rb), nil
}

func (r *calc[T]) Merge(ss []string) ([]string, error) {
	rr, err := r.parseAll(ss)
	if err != nil {
		return nil, err
	}
	return r.formatAll(r.alg.Merge(rr...)), nil
}

func (r *calc[T]) Subtract(base string, ss []string) ([]string, error) {
	b, err := interval.Parse(base, r.parse)
	if err != nil {
		return nil, err
	}
	rr, err := r.parseAll(ss)
	if err != nil {
		return nil, err
	}
	return r.formatAll(r.alg.Subtract(b, r.delta, rr...)), nil
}

func (r *calc[T]) Closed(s string) (string, error) {
	rng, err := interval.Parse(s, r.parse)
	if err != nil {
		return "", err
	}
	return r.alg.ToClosed(rng, r.delta).Format(r.format), nil
}

func (r *calc[T]) parseAll(ss []string) ([]interval.Range[T], error) {
	rr := make([]interval.Range[T], 0, len(ss))
	for _, s := range ss {
		rng, err := interval.Parse(s, r.parse)
		if err != nil {
			return nil, err
		}
		rr = append(rr, rng)
	}
	return rr, nil
}

func (r *calc[T]) formatAll(rr []interval.Range[T]) []string {
	out := make([]string, 0, len(rr))
	for _, rng := range rr {
		out = append(out, rng.Format(r.format))
	}
	return out
}
