package temporal

import (
	"fmt"

	"github.com/chronotope/chrono/period"
)

// commonTicks re-expresses d in period c, which must exactly represent
// d's period (callers obtain c from period.Common). The integer result
// is exact; the float result is used only when a float Rep is in play.
func commonTicks[R Rep](d Duration[R], c period.Period) (int128, error) {
	num, den, err := period.Divide(d.per, c)
	if err != nil {
		return int128{}, err
	}
	x := mul128(repToInt64(d.ticks), num)
	if den == 1 {
		return x, nil
	}
	// A true common period divides exactly; a remainder can only come
	// from a caller-supplied non-common target.
	q, _, ok := quoRem128(x, den)
	if !ok {
		return int128{}, fmt.Errorf("%w: rescale to %s", ErrOverflow, c)
	}
	return int128From64(q), nil
}

// commonTicksFloat re-expresses d in period c as a float64 tick count.
func commonTicksFloat[R Rep](d Duration[R], c period.Period) (float64, error) {
	num, den, err := period.Divide(d.per, c)
	if err != nil {
		return 0, err
	}
	return float64(d.ticks) * float64(num) / float64(den), nil
}

// AddInto adds two durations of arbitrary Reps and periods. The result
// is expressed in the common period of the operands, stored as RO
// (which the caller names explicitly, Go having no implicit widening).
// Fails with ErrOverflow instead of wrapping.
func AddInto[RO, R1, R2 Rep](a Duration[R1], b Duration[R2]) (Duration[RO], error) {
	return combineInto[RO](a, b, false)
}

// SubInto subtracts b from a under the same rules as AddInto.
func SubInto[RO, R1, R2 Rep](a Duration[R1], b Duration[R2]) (Duration[RO], error) {
	return combineInto[RO](a, b, true)
}

// Add adds two durations sharing a Rep. The result is in the common
// period of the operands.
func Add[R Rep](a, b Duration[R]) (Duration[R], error) {
	return AddInto[R](a, b)
}

// Sub subtracts b from a, both sharing a Rep.
func Sub[R Rep](a, b Duration[R]) (Duration[R], error) {
	return SubInto[R](a, b)
}

func combineInto[RO, R1, R2 Rep](a Duration[R1], b Duration[R2], negate bool) (Duration[RO], error) {
	var zero Duration[RO]
	c, err := period.Common(a.per, b.per)
	if err != nil {
		return zero, err
	}
	if isFloat[R1]() || isFloat[R2]() || isFloat[RO]() {
		fa, err := commonTicksFloat(a, c)
		if err != nil {
			return zero, err
		}
		fb, err := commonTicksFloat(b, c)
		if err != nil {
			return zero, err
		}
		if negate {
			fb = -fb
		}
		ticks, err := repFromFloat[RO](fa + fb)
		if err != nil {
			return zero, err
		}
		return New(ticks, c), nil
	}
	xa, err := commonTicks(a, c)
	if err != nil {
		return zero, err
	}
	xb, err := commonTicks(b, c)
	if err != nil {
		return zero, err
	}
	if negate {
		xb = xb.neg()
	}
	sum, overflow := add128(xa, xb)
	if overflow {
		return zero, fmt.Errorf("%w: sum exceeds 128-bit intermediate", ErrOverflow)
	}
	ticks, err := repFromInt128[RO](sum)
	if err != nil {
		return zero, err
	}
	return New(ticks, c), nil
}

// Neg negates a duration. Fails with ErrOverflow for the most negative
// integer value, which has no positive counterpart.
func Neg[R Rep](d Duration[R]) (Duration[R], error) {
	if isFloat[R]() {
		return New(-d.ticks, d.per), nil
	}
	if d.ticks == repMin[R]() {
		return d, fmt.Errorf("%w: negating minimum tick count", ErrOverflow)
	}
	return New(-d.ticks, d.per), nil
}

// Abs returns the magnitude of a duration. Fails with ErrOverflow for
// the most negative integer value.
func Abs[R Rep](d Duration[R]) (Duration[R], error) {
	if d.ticks >= 0 {
		return d, nil
	}
	return Neg(d)
}

// MulScalar scales a duration by k, keeping the period.
func MulScalar[R Rep](d Duration[R], k R) (Duration[R], error) {
	var zero Duration[R]
	if isFloat[R]() {
		ticks, err := repFromFloat[R](float64(d.ticks) * float64(k))
		if err != nil {
			return zero, err
		}
		return New(ticks, d.per), nil
	}
	ticks, err := repFromInt128[R](mul128(repToInt64(d.ticks), repToInt64(k)))
	if err != nil {
		return zero, err
	}
	return New(ticks, d.per), nil
}

// DivScalar divides a duration by k, truncating toward zero for
// integer Reps. Fails with ErrDivideByZero for k == 0 and ErrOverflow
// for the single integer quotient that cannot be represented.
func DivScalar[R Rep](d Duration[R], k R) (Duration[R], error) {
	var zero Duration[R]
	if k == 0 {
		return zero, ErrDivideByZero
	}
	if isFloat[R]() {
		ticks, err := repFromFloat[R](float64(d.ticks) / float64(k))
		if err != nil {
			return zero, err
		}
		return New(ticks, d.per), nil
	}
	if d.ticks == repMin[R]() && repToInt64(k) == -1 {
		return zero, fmt.Errorf("%w: dividing minimum tick count by -1", ErrOverflow)
	}
	return New(d.ticks/k, d.per), nil
}

// Compare orders two durations of arbitrary Reps and periods under
// their common period, returning -1, 0, or +1. Integer comparisons are
// exact (128-bit); a float operand forces a float comparison.
func Compare[R1, R2 Rep](a Duration[R1], b Duration[R2]) (int, error) {
	c, err := period.Common(a.per, b.per)
	if err != nil {
		return 0, err
	}
	if isFloat[R1]() || isFloat[R2]() {
		fa, err := commonTicksFloat(a, c)
		if err != nil {
			return 0, err
		}
		fb, err := commonTicksFloat(b, c)
		if err != nil {
			return 0, err
		}
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		default:
			return 0, nil
		}
	}
	xa, err := commonTicks(a, c)
	if err != nil {
		return 0, err
	}
	xb, err := commonTicks(b, c)
	if err != nil {
		return 0, err
	}
	return cmp128(xa, xb), nil
}

// Equal reports whether two durations denote the same span.
func Equal[R1, R2 Rep](a Duration[R1], b Duration[R2]) (bool, error) {
	c, err := Compare(a, b)
	return c == 0, err
}

// Less reports whether a denotes a shorter span than b.
func Less[R1, R2 Rep](a Duration[R1], b Duration[R2]) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}
