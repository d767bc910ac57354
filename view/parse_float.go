package view

import "math"

const (
	// maxExactFracDigits is how many fractional digits fit exactly in a uint64.
	maxExactFracDigits = 19
	// expCap bounds the exponent accumulator; any exponent that large is already
	// far outside the float64 range.
	expCap = 10000
	// maxDecimalExp is the largest decimal exponent that can still be finite.
	maxDecimalExp = 308
	// minDecimalExp is the exponent below which every value underflows to zero.
	minDecimalExp = -400
)

var pow10Exact = [maxExactFracDigits + 1]float64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// Binary scaling table: 10^(2^i) and its reciprocal.
var (
	pow10Big = [9]float64{1e1, 1e2, 1e4, 1e8, 1e16, 1e32, 1e64, 1e128, 1e256}
	pow10Inv = [9]float64{1e-1, 1e-2, 1e-4, 1e-8, 1e-16, 1e-32, 1e-64, 1e-128, 1e-256}
	pow10Exp = [9]int{1, 2, 4, 8, 16, 32, 64, 128, 256}
)

// ParseFloat64 parses v as a decimal floating-point number.
//
// The grammar is [sign] (digits [. digits] | . digits) [(e|E) [sign] digits]
// and the whole of v must match it. A '.' must be followed by a digit. The
// tokens inf and nan, hexadecimal floats and whitespace are rejected.
//
// Integer parts longer than about 20 digits keep only their leading digits when
// no exponent is given; write such values with an exponent instead. Exponents
// above 308 fail with ErrRange, as does any value that overflows while scaling.
// Values that underflow, and exponents below -400, yield a signed zero.
func (v View) ParseFloat64() (float64, error) {
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

	var intPart uint64
	haveInt, intFull := false, false
	for len(p) > 0 && isDigit(p[0]) {
		d := uint64(p[0] - '0')
		if !intFull && (intPart < math.MaxUint64/10 || (intPart == math.MaxUint64/10 && d <= math.MaxUint64%10)) {
			intPart = intPart*10 + d
		} else {
			intFull = true
		}
		p = p[1:]
		haveInt = true
	}

	var (
		fracAcc    uint64
		fracDigits int
		haveFrac   bool
		fracTail   float64
		tailScale  = 1e-20 // weight of the 20th fractional digit
	)
	if len(p) > 0 && p[0] == '.' {
		p = p[1:]
		for len(p) > 0 && isDigit(p[0]) {
			d := p[0] - '0'
			if fracDigits < maxExactFracDigits {
				fracAcc = fracAcc*10 + uint64(d)
			} else {
				fracTail += float64(d) * tailScale
				tailScale *= 0.1
			}
			fracDigits++
			p = p[1:]
			haveFrac = true
		}
		if !haveFrac {
			return 0, ErrSyntax
		}
	}
	if !haveInt && !haveFrac {
		return 0, ErrSyntax
	}

	exp := 0
	if len(p) > 0 && (p[0] == 'e' || p[0] == 'E') {
		p = p[1:]
		if len(p) == 0 {
			return 0, ErrSyntax
		}
		expNeg := false
		if p[0] == '+' || p[0] == '-' {
			expNeg = p[0] == '-'
			p = p[1:]
			if len(p) == 0 {
				return 0, ErrSyntax
			}
		}
		haveExp := false
		for len(p) > 0 && isDigit(p[0]) {
			if exp < expCap {
				exp = exp*10 + int(p[0]-'0')
			}
			p = p[1:]
			haveExp = true
		}
		if !haveExp {
			return 0, ErrSyntax
		}
		if expNeg {
			exp = -exp
		}
	}

	if len(p) != 0 {
		return 0, ErrSyntax
	}

	value := float64(intPart)
	if fracDigits > 0 {
		used := min(fracDigits, maxExactFracDigits)
		value += float64(fracAcc)/pow10Exact[used] + fracTail
	}

	if value == 0 {
		return signedZero(neg), nil
	}
	if exp > maxDecimalExp {
		return 0, ErrRange
	}
	if exp < minDecimalExp {
		return signedZero(neg), nil
	}

	scaled, ok := scalePow10(value, exp)
	if !ok {
		return 0, ErrRange
	}
	if neg {
		scaled = -scaled
	}
	return scaled, nil
}

// scalePow10 multiplies value by 10^exp, consuming the largest table powers
// first. It reports false if a positive scaling step leaves the finite range.
func scalePow10(value float64, exp int) (float64, bool) {
	switch {
	case exp > 0:
		for i := len(pow10Exp) - 1; i >= 0; i-- {
			if exp >= pow10Exp[i] {
				value *= pow10Big[i]
				if math.IsInf(value, 0) || math.IsNaN(value) {
					return 0, false
				}
				exp -= pow10Exp[i]
			}
		}
	case exp < 0:
		exp = -exp
		for i := len(pow10Exp) - 1; i >= 0; i-- {
			if exp >= pow10Exp[i] {
				value *= pow10Inv[i]
				exp -= pow10Exp[i]
			}
		}
	}
	return value, true
}

func signedZero(neg bool) float64 {
	if neg {
		return math.Copysign(0, -1)
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
