package temporal

import (
	"errors"
	"fmt"
	"math"

	"github.com/chronotope/chrono/period"
)

// ErrOverflow indicates that an arithmetic result or cast exceeds the
// range of the target Rep. It is detected before any value wraps.
var ErrOverflow = errors.New("duration overflow")

// ErrDivideByZero indicates a scalar division by zero.
var ErrDivideByZero = errors.New("duration divide by zero")

// Rep is the set of tick storage types: signed integers or float64.
// The constraint is closed (no tilde) so the package can inspect the
// concrete kind at run time without reflection.
type Rep interface {
	int32 | int64 | float64
}

// Duration is a tick count in a rational period. The represented span
// equals Count() * Period().Num() / Period().Den() seconds.
//
// Duration is an immutable value; it is safe to share across
// goroutines. Build durations with New, Zero, MinValue, MaxValue or
// the named unit constructors in units.go. The zero value has an
// invalid period and every arithmetic operation on it fails with
// period.ErrInvalidPeriod.
type Duration[R Rep] struct {
	ticks R
	per   period.Period
}

// New constructs a duration of ticks in period p.
func New[R Rep](ticks R, p period.Period) Duration[R] {
	return Duration[R]{ticks: ticks, per: p}
}

// Count returns the raw tick value with no conversion.
func (d Duration[R]) Count() R { return d.ticks }

// Period returns the seconds-per-tick period.
func (d Duration[R]) Period() period.Period { return d.per }

// Seconds returns the represented span as a float64. Lossy; for
// display only.
func (d Duration[R]) Seconds() float64 {
	return float64(d.ticks) * d.per.Seconds()
}

// String renders the duration as "<ticks> x <period>".
func (d Duration[R]) String() string {
	return fmt.Sprintf("%v x %s", d.ticks, d.per)
}

// Zero returns the zero duration in period p.
func Zero[R Rep](p period.Period) Duration[R] {
	return Duration[R]{per: p}
}

// MinValue returns the most negative representable duration in p.
func MinValue[R Rep](p period.Period) Duration[R] {
	return Duration[R]{ticks: repMin[R](), per: p}
}

// MaxValue returns the most positive representable duration in p.
func MaxValue[R Rep](p period.Period) Duration[R] {
	return Duration[R]{ticks: repMax[R](), per: p}
}

// repMin returns the lower bound of R. For float64 this is the most
// negative finite value, mirroring a numeric-limits lowest().
func repMin[R Rep]() R {
	var z R
	switch any(z).(type) {
	case int32:
		return any(int32(math.MinInt32)).(R)
	case int64:
		return any(int64(math.MinInt64)).(R)
	default:
		return any(-math.MaxFloat64).(R)
	}
}

// repMax returns the upper bound of R.
func repMax[R Rep]() R {
	var z R
	switch any(z).(type) {
	case int32:
		return any(int32(math.MaxInt32)).(R)
	case int64:
		return any(int64(math.MaxInt64)).(R)
	default:
		return any(math.MaxFloat64).(R)
	}
}

// isFloat reports whether R is the floating storage type.
func isFloat[R Rep]() bool {
	var z R
	_, ok := any(z).(float64)
	return ok
}

// repToInt64 returns the tick count as int64. Only meaningful for
// integer Reps.
func repToInt64[R Rep](v R) int64 {
	switch t := any(v).(type) {
	case int32:
		return int64(t)
	case int64:
		return t
	default:
		return int64(any(v).(float64))
	}
}

// repFromInt128 narrows a 128-bit tick count into R, failing with
// ErrOverflow if it does not fit. Float targets never fail (they lose
// precision instead of range).
func repFromInt128[R Rep](x int128) (R, error) {
	var z R
	switch any(z).(type) {
	case int32:
		v, ok := x.to64()
		if !ok || v > math.MaxInt32 || v < math.MinInt32 {
			return z, fmt.Errorf("%w: value exceeds int32 ticks", ErrOverflow)
		}
		return any(int32(v)).(R), nil
	case int64:
		v, ok := x.to64()
		if !ok {
			return z, fmt.Errorf("%w: value exceeds int64 ticks", ErrOverflow)
		}
		return any(v).(R), nil
	default:
		return any(x.toFloat()).(R), nil
	}
}

// repFromFloat narrows a float tick count into R, truncating toward
// zero for integer targets.
func repFromFloat[R Rep](f float64) (R, error) {
	var z R
	if math.IsNaN(f) {
		return z, fmt.Errorf("%w: not a number", ErrOverflow)
	}
	switch any(z).(type) {
	case int32:
		t := math.Trunc(f)
		if t > math.MaxInt32 || t < math.MinInt32 {
			return z, fmt.Errorf("%w: value exceeds int32 ticks", ErrOverflow)
		}
		return any(int32(t)).(R), nil
	case int64:
		t := math.Trunc(f)
		// 2^63 is not representable as int64; the comparison is exact
		// because both bounds are powers of two.
		if t >= math.MaxInt64 || t < math.MinInt64 {
			return z, fmt.Errorf("%w: value exceeds int64 ticks", ErrOverflow)
		}
		return any(int64(t)).(R), nil
	default:
		if math.IsInf(f, 0) {
			return z, fmt.Errorf("%w: infinite result", ErrOverflow)
		}
		return any(f).(R), nil
	}
}
