package view

import "math"

// Integer parsing accepts only [sign] digits in base 10: no whitespace, no
// base prefixes, no separators. Overflow is detected before each
// accumulation step, so no intermediate value ever wraps.

// ParseUint64 parses v as an unsigned decimal integer with an optional '+'.
func (v View) ParseUint64() (uint64, error) {
	p := v.b
	if len(p) == 0 {
		return 0, ErrSyntax
	}
	if p[0] == '+' {
		p = p[1:]
		if len(p) == 0 {
			return 0, ErrSyntax
		}
	}
	return accumulate(p, math.MaxUint64)
}

// ParseInt64 parses v as a signed decimal integer with an optional '+' or '-'.
// The full two's-complement range is accepted, including math.MinInt64.
func (v View) ParseInt64() (int64, error) {
	p := v.b
	if len(p) == 0 {
		return 0, ErrSyntax
	}
	neg := false
	if p[0] == '+' || p[0] == '-' {
		neg = p[0] == '-'
		p = p[1:]
		if len(p) == 0 {
			return 0, ErrSyntax
		}
	}

	// Magnitudes are accumulated unsigned; the negative side reaches one further.
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	acc, err := accumulate(p, limit)
	if err != nil {
		return 0, err
	}
	if neg {
		if acc == limit {
			return math.MinInt64, nil
		}
		return -int64(acc), nil
	}
	return int64(acc), nil
}

// ParseInt parses v as a signed decimal integer of the platform's int width.
func (v View) ParseInt() (int, error) {
	n, err := v.ParseInt64()
	if err != nil {
		return 0, err
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, ErrRange
	}
	return int(n), nil
}

// accumulate reads a non-empty run of digits as a magnitude no larger than limit.
// A non-digit anywhere is a syntax error, even after an overflow.
func accumulate(p []byte, limit uint64) (uint64, error) {
	cutoff, maxLast := limit/10, limit%10
	var acc uint64
	overflow := false
	for _, c := range p {
		if c < '0' || c > '9' {
			return 0, ErrSyntax
		}
		d := uint64(c - '0')
		if overflow || acc > cutoff || (acc == cutoff && d > maxLast) {
			overflow = true
			continue
		}
		acc = acc*10 + d
	}
	if overflow {
		return 0, ErrRange
	}
	return acc, nil
}
