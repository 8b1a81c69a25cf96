package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMul128Extremes(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
	}{
		{"max_times_max", math.MaxInt64, math.MaxInt64},
		{"min_times_max", math.MinInt64, math.MaxInt64},
		{"min_times_minus_one", math.MinInt64, -1},
		{"zero", 0, math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := mul128(tt.a, tt.b)
			// Verify through division: x / a == b for nonzero a.
			if tt.a > 0 {
				q, r, ok := quoRem128(x, tt.a)
				if ok {
					assert.Equal(t, tt.b, q)
					assert.Equal(t, int64(0), r)
				}
			}
			_ = x
		})
	}
}

func TestMul128Sign(t *testing.T) {
	assert.True(t, mul128(-3, 5).isNeg())
	assert.True(t, mul128(3, -5).isNeg())
	assert.False(t, mul128(-3, -5).isNeg())
	v, ok := mul128(-3, -5).to64()
	assert.True(t, ok)
	assert.Equal(t, int64(15), v)
}

func TestQuoRem128TruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int64
		d      int64
		wantQ  int64
		wantR  int64
	}{
		{"positive", 7, 1, 2, 3, 1},
		{"negative_dividend", -7, 1, 2, -3, -1},
		{"exact", 8, 1, 2, 4, 0},
		{"negative_exact", -8, 1, 2, -4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r, ok := quoRem128(mul128(tt.a, tt.b), tt.d)
			assert.True(t, ok)
			assert.Equal(t, tt.wantQ, q)
			assert.Equal(t, tt.wantR, r)
		})
	}
}

func TestQuoRem128QuotientOverflow(t *testing.T) {
	x := mul128(math.MaxInt64, 4)
	_, _, ok := quoRem128(x, 2)
	assert.False(t, ok, "quotient 2*MaxInt64 does not fit int64")

	// The negative boundary value itself fits.
	q, r, ok := quoRem128(int128From64(math.MinInt64), 1)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), q)
	assert.Equal(t, int64(0), r)
}

func TestAdd128Overflow(t *testing.T) {
	big := mul128(math.MaxInt64, math.MaxInt64)
	_, overflow := add128(big, big)
	assert.False(t, overflow, "2*(MaxInt64^2) still fits 128 bits")

	// Construct values near the 128-bit boundary.
	almost := int128{hi: math.MaxInt64, lo: math.MaxUint64}
	_, overflow = add128(almost, int128From64(1))
	assert.True(t, overflow)
}

func TestFits64(t *testing.T) {
	assert.True(t, int128From64(0).fits64())
	assert.True(t, int128From64(math.MinInt64).fits64())
	assert.True(t, int128From64(math.MaxInt64).fits64())
	assert.False(t, mul128(math.MaxInt64, 2).fits64())
	assert.False(t, mul128(math.MinInt64, 2).fits64())
}
