package period

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrInvalidPeriod indicates a period with a zero or negative
// numerator or denominator.
var ErrInvalidPeriod = errors.New("invalid period")

// ErrOverflow indicates that combining two periods exceeds the int64
// range. It is detected before any value is corrupted.
var ErrOverflow = errors.New("period overflow")

// Period is a reduced fraction of seconds per tick.
//
// Invariants (established by New and preserved by every operation):
//   - num > 0, den > 0
//   - gcd(num, den) == 1
//
// The zero value is NOT a valid period; consumers must reject it via
// IsZero before arithmetic.
type Period struct {
	num int64
	den int64
}

// New constructs a reduced period of num/den seconds per tick.
// Returns ErrInvalidPeriod if den is zero or either input is
// non-positive.
func New(num, den int64) (Period, error) {
	if den == 0 {
		return Period{}, fmt.Errorf("%w: zero denominator", ErrInvalidPeriod)
	}
	if num <= 0 || den < 0 {
		return Period{}, fmt.Errorf("%w: %d/%d is not positive", ErrInvalidPeriod, num, den)
	}
	g := gcd(num, den)
	return Period{num: num / g, den: den / g}, nil
}

// MustNew is New for package-level constants with known-good inputs.
// It panics on invalid input, which is a programmer error.
func MustNew(num, den int64) Period {
	p, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return p
}

// Predefined tick periods. Month and Year are averaged-Gregorian
// lengths (146097 days per 400 years); they are NOT calendar-exact and
// arithmetic on them does not track actual month or year boundaries.
var (
	Nano   = MustNew(1, 1_000_000_000)
	Micro  = MustNew(1, 1_000_000)
	Milli  = MustNew(1, 1_000)
	Second = MustNew(1, 1)
	Minute = MustNew(60, 1)
	Hour   = MustNew(3_600, 1)
	Day    = MustNew(86_400, 1)
	Week   = MustNew(604_800, 1)
	Month  = MustNew(2_629_746, 1)
	Year   = MustNew(31_556_952, 1)
)

// Num returns the numerator of the reduced fraction.
func (p Period) Num() int64 { return p.num }

// Den returns the denominator of the reduced fraction.
func (p Period) Den() int64 { return p.den }

// IsZero reports whether p is the invalid zero value.
func (p Period) IsZero() bool { return p.den == 0 }

// Seconds returns the period as a float64. Lossy; for display and
// rough estimates only, never for comparisons.
func (p Period) Seconds() float64 { return float64(p.num) / float64(p.den) }

// Equal reports whether two reduced periods denote the same fraction.
func (p Period) Equal(q Period) bool { return p.num == q.num && p.den == q.den }

// String renders the period as "num/den s".
func (p Period) String() string {
	if p.IsZero() {
		return "0/0 s (invalid)"
	}
	return fmt.Sprintf("%d/%d s", p.num, p.den)
}

// Cmp compares two periods as exact rationals, returning -1, 0, or +1.
// Comparison is by cross multiplication in 128-bit space so no
// floating error can reorder nearby periods.
func (p Period) Cmp(q Period) int {
	// p.num/p.den ? q.num/q.den  <=>  p.num*q.den ? q.num*p.den
	lhi, llo := bits.Mul64(uint64(p.num), uint64(q.den))
	rhi, rlo := bits.Mul64(uint64(q.num), uint64(p.den))
	switch {
	case lhi != rhi:
		if lhi < rhi {
			return -1
		}
		return 1
	case llo != rlo:
		if llo < rlo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Common returns the coarsest period that exactly represents both a
// and b without remainder: gcd of the numerators over lcm of the
// denominators. The result is already in lowest terms because each
// input is. Returns ErrOverflow if the lcm exceeds int64.
func Common(a, b Period) (Period, error) {
	if a.IsZero() || b.IsZero() {
		return Period{}, ErrInvalidPeriod
	}
	num := gcd(a.num, b.num)
	g := gcd(a.den, b.den)
	den, err := checkedMul(a.den/g, b.den)
	if err != nil {
		return Period{}, err
	}
	return Period{num: num, den: den}, nil
}

// Divide returns the exact reduced ratio p/q as a numerator and
// denominator pair. Used by duration casts: ticks in period p scale to
// period q by multiplying by num and dividing by den.
func Divide(p, q Period) (num, den int64, err error) {
	if p.IsZero() || q.IsZero() {
		return 0, 0, ErrInvalidPeriod
	}
	// (p.num*q.den) / (p.den*q.num), reducing before multiplying so
	// intermediate products stay small.
	g1 := gcd(p.num, q.num)
	g2 := gcd(q.den, p.den)
	num, err = checkedMul(p.num/g1, q.den/g2)
	if err != nil {
		return 0, 0, err
	}
	den, err = checkedMul(p.den/g2, q.num/g1)
	if err != nil {
		return 0, 0, err
	}
	return num, den, nil
}

// gcd computes the greatest common divisor of two positive int64s.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// checkedMul multiplies two positive int64s, failing with ErrOverflow
// instead of wrapping.
func checkedMul(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d * %d exceeds int64", ErrOverflow, a, b)
	}
	return int64(lo), nil
}
