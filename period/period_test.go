package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReduces(t *testing.T) {
	tests := []struct {
		name    string
		num     int64
		den     int64
		wantNum int64
		wantDen int64
	}{
		{"already_reduced", 1, 1000, 1, 1000},
		{"common_factor", 60, 90, 2, 3},
		{"whole_seconds", 3600, 1, 3600, 1},
		{"reduces_to_one", 7, 7, 1, 1},
		{"large_factor", 2_629_746, 86_400, 48699, 1600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.num, tt.den)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, p.Num())
			assert.Equal(t, tt.wantDen, p.Den())
		})
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		num  int64
		den  int64
	}{
		{"zero_denominator", 1, 0},
		{"zero_numerator", 0, 1},
		{"negative_numerator", -1, 1},
		{"negative_denominator", 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.num, tt.den)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPeriod)
		})
	}
}

func TestZeroValueIsInvalid(t *testing.T) {
	var p Period
	assert.True(t, p.IsZero())
	assert.False(t, Second.IsZero())
}

func TestCommon(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Period
		wantNum int64
		wantDen int64
	}{
		{"hour_and_minute", Hour, Minute, 60, 1},
		{"minute_and_second", Minute, Second, 1, 1},
		{"milli_and_micro", Milli, Micro, 1, 1_000_000},
		{"same_period", Hour, Hour, 3600, 1},
		{"coprime_dens", MustNew(1, 3), MustNew(1, 5), 1, 15},
		{"mixed", MustNew(2, 3), MustNew(4, 5), 2, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Common(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, c.Num())
			assert.Equal(t, tt.wantDen, c.Den())

			// The common period must exactly represent both inputs:
			// a/c and b/c are whole tick counts.
			for _, p := range []Period{tt.a, tt.b} {
				num, den, err := Divide(p, c)
				require.NoError(t, err)
				assert.Equal(t, int64(1), den, "%s is not a whole multiple of %s", p, c)
				assert.Positive(t, num)
			}
		})
	}
}

func TestCommonOverflow(t *testing.T) {
	a := MustNew(1, (1<<62)+1) // odd, huge denominator
	b := MustNew(1, 1<<62)
	_, err := Common(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b Period
		want int
	}{
		{"hour_gt_minute", Hour, Minute, 1},
		{"nano_lt_micro", Nano, Micro, -1},
		{"equal", Second, MustNew(5, 5), 0},
		{"close_fractions", MustNew(1, 3), MustNew(333_333_333, 1_000_000_000), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Cmp(tt.b))
			assert.Equal(t, -tt.want, tt.b.Cmp(tt.a))
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name    string
		p, q    Period
		wantNum int64
		wantDen int64
	}{
		{"hour_over_minute", Hour, Minute, 60, 1},
		{"minute_over_hour", Minute, Hour, 1, 60},
		{"milli_over_nano", Milli, Nano, 1_000_000, 1},
		{"same", Day, Day, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, den, err := Divide(tt.p, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, num)
			assert.Equal(t, tt.wantDen, den)
		})
	}
}

func TestDivideInvalid(t *testing.T) {
	var zero Period
	_, _, err := Divide(zero, Second)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, _, err = Divide(Second, zero)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPredefinedRelationships(t *testing.T) {
	// Each named unit is a whole multiple of the next finer one.
	pairs := []struct {
		coarse, fine Period
		factor       int64
	}{
		{Micro, Nano, 1000},
		{Milli, Micro, 1000},
		{Second, Milli, 1000},
		{Minute, Second, 60},
		{Hour, Minute, 60},
		{Day, Hour, 24},
		{Week, Day, 7},
		{Year, Month, 12},
	}
	for _, pp := range pairs {
		num, den, err := Divide(pp.coarse, pp.fine)
		require.NoError(t, err)
		assert.Equal(t, pp.factor, num, "%s / %s", pp.coarse, pp.fine)
		assert.Equal(t, int64(1), den)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1/1000 s", Milli.String())
	assert.Equal(t, "3600/1 s", Hour.String())
}
