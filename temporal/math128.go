package temporal

import (
	"math"
	"math/bits"
)

// int128 is a signed 128-bit integer in two's-complement form:
// value = hi*2^64 + lo, with hi signed and lo unsigned.
//
// Rescaling a 64-bit tick count by a 64-bit period ratio always fits
// in 128 bits, so intermediate products never wrap; overflow is only
// possible (and checked) when narrowing back to a Rep.
type int128 struct {
	hi int64
	lo uint64
}

func int128From64(v int64) int128 {
	return int128{hi: v >> 63, lo: uint64(v)}
}

func (x int128) isNeg() bool { return x.hi < 0 }

func (x int128) neg() int128 {
	lo := ^x.lo + 1
	hi := ^x.hi
	if lo == 0 {
		hi++
	}
	return int128{hi: hi, lo: lo}
}

// abs returns the magnitude of x as an unsigned 128-bit pair.
func (x int128) abs() (hi, lo uint64) {
	if x.isNeg() {
		n := x.neg()
		return uint64(n.hi), n.lo
	}
	return uint64(x.hi), x.lo
}

// fits64 reports whether x is representable as int64.
func (x int128) fits64() bool {
	return x.hi == int64(x.lo)>>63
}

// to64 narrows x to int64, reporting failure instead of wrapping.
func (x int128) to64() (int64, bool) {
	if !x.fits64() {
		return 0, false
	}
	return int64(x.lo), true
}

// toFloat converts x to float64. Lossy beyond 2^53; float reps only
// promise exactness where the value is representable.
func (x int128) toFloat() float64 {
	return math.Ldexp(float64(x.hi), 64) + float64(x.lo)
}

// mul128 multiplies two int64s into an int128. Never overflows.
func mul128(a, b int64) int128 {
	neg := (a < 0) != (b < 0)
	ua := uint64(a)
	if a < 0 {
		ua = -ua
	}
	ub := uint64(b)
	if b < 0 {
		ub = -ub
	}
	hi, lo := bits.Mul64(ua, ub)
	r := int128{hi: int64(hi), lo: lo}
	if neg {
		r = r.neg()
	}
	return r
}

// add128 adds two int128s, reporting signed overflow.
func add128(a, b int128) (int128, bool) {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(uint64(a.hi), uint64(b.hi), carry)
	r := int128{hi: int64(hi), lo: lo}
	// Same-sign operands producing an opposite-sign result means the
	// true sum left the 128-bit range.
	overflow := a.isNeg() == b.isNeg() && r.isNeg() != a.isNeg()
	return r, overflow
}

// cmp128 compares two int128s, returning -1, 0, or +1.
func cmp128(a, b int128) int {
	if a.hi != b.hi {
		if a.hi < b.hi {
			return -1
		}
		return 1
	}
	if a.lo != b.lo {
		if a.lo < b.lo {
			return -1
		}
		return 1
	}
	return 0
}

// quoRem128 divides x by the positive divisor d, truncating toward
// zero. Fails if the quotient does not fit in int64. The remainder
// carries the sign of x.
func quoRem128(x int128, d int64) (q, r int64, ok bool) {
	neg := x.isNeg()
	uhi, ulo := x.abs()
	ud := uint64(d)
	if uhi >= ud {
		// Quotient magnitude is at least 2^64.
		return 0, 0, false
	}
	uq, ur := bits.Div64(uhi, ulo, ud)
	if neg {
		if uq > 1<<63 {
			return 0, 0, false
		}
		if uq == 1<<63 {
			return math.MinInt64, -int64(ur), true
		}
		return -int64(uq), -int64(ur), true
	}
	if uq > math.MaxInt64 {
		return 0, 0, false
	}
	return int64(uq), int64(ur), true
}
