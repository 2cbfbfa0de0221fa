package interval

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseFunc parses a single bound value.
type ParseFunc[T any] func(s string) (T, error)

// Parse parses a range literal such as "1..3", "1...3", "..3" or "1..".
// An empty bound is absent.
func Parse[T any](s string, parse ParseFunc[T]) (Range[T], error) {
	var r Range[T]
	s = strings.TrimSpace(s)
	i := strings.Index(s, "..")
	if i == -1 {
		return r, fmt.Errorf("no '..' in range %q", s)
	}
	from, to := s[:i], s[i+2:]
	if strings.HasPrefix(to, ".") {
		r.excludeEnd = true
		to = to[1:]
	}
	if strings.HasPrefix(to, ".") {
		return r, fmt.Errorf("too many dots in range %q", s)
	}
	if from != "" {
		v, err := parse(from)
		if err != nil {
			return Range[T]{}, fmt.Errorf("invalid begin %q in range %q: %w", from, s, err)
		}
		r.begin = Some(v)
	}
	if to != "" {
		v, err := parse(to)
		if err != nil {
			return Range[T]{}, fmt.Errorf("invalid end %q in range %q: %w", to, s, err)
		}
		r.end = Some(v)
	}
	return r, nil
}

func ParseInt(s string) (Range[int], error) {
	return Parse[int](s, strconv.Atoi)
}

func ParseFloat(s string) (Range[float64], error) {
	return Parse[float64](s, func(v string) (float64, error) {
		return strconv.ParseFloat(v, 64)
	})
}

// ParseTime parses a range of times formatted with layout.
func ParseTime(s, layout string) (Range[time.Time], error) {
	return Parse[time.Time](s, func(v string) (time.Time, error) {
		return time.Parse(layout, v)
	})
}
