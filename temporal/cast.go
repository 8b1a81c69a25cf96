package temporal

import (
	"fmt"
	"math"

	"github.com/chronotope/chrono/period"
)

type roundMode int

const (
	roundTrunc roundMode = iota
	roundFloor
	roundCeil
	roundHalfEven
)

// Cast converts d to period to, stored as RO. Integer targets truncate
// toward zero, matching integer-division semantics; float targets
// preserve the exact value when representable. Fails with ErrOverflow
// when the result exceeds RO's range; never panics.
func Cast[RO, R Rep](d Duration[R], to period.Period) (Duration[RO], error) {
	return castMode[RO](d, to, roundTrunc)
}

// Floor converts like Cast but rounds toward negative infinity.
func Floor[RO, R Rep](d Duration[R], to period.Period) (Duration[RO], error) {
	return castMode[RO](d, to, roundFloor)
}

// Ceil converts like Cast but rounds toward positive infinity.
func Ceil[RO, R Rep](d Duration[R], to period.Period) (Duration[RO], error) {
	return castMode[RO](d, to, roundCeil)
}

// Round converts like Cast but rounds to the nearest representable
// value, breaking exact halfway ties toward the even candidate.
func Round[RO, R Rep](d Duration[R], to period.Period) (Duration[RO], error) {
	return castMode[RO](d, to, roundHalfEven)
}

func castMode[RO, R Rep](d Duration[R], to period.Period, mode roundMode) (Duration[RO], error) {
	var zero Duration[RO]
	num, den, err := period.Divide(d.per, to)
	if err != nil {
		return zero, err
	}

	if isFloat[R]() {
		return castFloatSource[RO](float64(d.ticks), num, den, to, mode)
	}

	// Integer source: exact 128-bit path.
	x := mul128(repToInt64(d.ticks), num)
	if isFloat[RO]() {
		ticks, err := repFromFloat[RO](x.toFloat() / float64(den))
		if err != nil {
			return zero, err
		}
		return New(ticks, to), nil
	}

	q, r, ok := quoRem128(x, den)
	if !ok {
		return zero, fmt.Errorf("%w: casting %s to %s", ErrOverflow, d.per, to)
	}
	q, err = adjustQuotient(q, r, den, mode)
	if err != nil {
		return zero, err
	}
	ticks, err := repFromInt128[RO](int128From64(q))
	if err != nil {
		return zero, err
	}
	return New(ticks, to), nil
}

// adjustQuotient applies the rounding mode to a truncated quotient q
// with remainder r (same sign as the dividend) over positive den.
func adjustQuotient(q, r, den int64, mode roundMode) (int64, error) {
	step := func(delta int64) (int64, error) {
		next := q + delta
		// q and delta have magnitudes far below overflow except at the
		// int64 boundary itself.
		if (delta > 0 && next < q) || (delta < 0 && next > q) {
			return 0, fmt.Errorf("%w: rounding step exceeds int64 ticks", ErrOverflow)
		}
		return next, nil
	}

	switch mode {
	case roundTrunc:
		return q, nil
	case roundFloor:
		if r < 0 {
			return step(-1)
		}
		return q, nil
	case roundCeil:
		if r > 0 {
			return step(1)
		}
		return q, nil
	case roundHalfEven:
		if r == 0 {
			return q, nil
		}
		away := int64(1)
		mag := r
		if r < 0 {
			away = -1
			mag = -r
		}
		twice := mag * 2 // mag < den <= MaxInt64, but 2*mag can wrap
		wrapped := twice < mag
		switch {
		case wrapped || twice > den:
			return step(away)
		case twice < den:
			return q, nil
		default:
			// Exact halfway: pick the even of q and q+away.
			if q%2 == 0 {
				return q, nil
			}
			return step(away)
		}
	}
	return q, nil
}

// castFloatSource handles a float64 tick source for any target Rep.
func castFloatSource[RO Rep](ticks float64, num, den int64, to period.Period, mode roundMode) (Duration[RO], error) {
	var zero Duration[RO]
	v := ticks * float64(num) / float64(den)
	if isFloat[RO]() {
		t, err := repFromFloat[RO](v)
		if err != nil {
			return zero, err
		}
		return New(t, to), nil
	}
	switch mode {
	case roundFloor:
		v = math.Floor(v)
	case roundCeil:
		v = math.Ceil(v)
	case roundHalfEven:
		v = math.RoundToEven(v)
	default:
		v = math.Trunc(v)
	}
	t, err := repFromFloat[RO](v)
	if err != nil {
		return zero, err
	}
	return New(t, to), nil
}
