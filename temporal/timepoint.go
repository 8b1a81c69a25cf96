package temporal

import "github.com/chronotope/chrono/period"

// Clock is the constraint for clock tag types. A tag is a zero-size
// struct identifying the epoch a time point is measured from; the
// concrete tags live in package clock.
//
// IsSteady() == true asserts that for any two now-reads ordered in
// real time the returned points are non-decreasing and the tick rate
// is constant.
type Clock interface {
	ClockName() string
	IsSteady() bool
}

// TimePoint is a duration since the epoch of clock C. The clock is a
// type parameter: time points of different clocks cannot meet in any
// operation below, so a clock mismatch is a compile error rather than
// a runtime check. Crossing clocks requires the explicit conversion
// functions in package clock.
type TimePoint[C Clock, R Rep] struct {
	since Duration[R]
}

// At builds a time point from a duration since C's epoch.
func At[C Clock, R Rep](since Duration[R]) TimePoint[C, R] {
	return TimePoint[C, R]{since: since}
}

// SinceEpoch returns the duration since the clock's epoch.
func (t TimePoint[C, R]) SinceEpoch() Duration[R] { return t.since }

// Clock returns the zero value of the clock tag, for its name and
// steadiness.
func (t TimePoint[C, R]) Clock() C {
	var c C
	return c
}

// String renders the point as "<duration> since <clock> epoch".
func (t TimePoint[C, R]) String() string {
	var c C
	return t.since.String() + " since " + c.ClockName() + " epoch"
}

// MinPoint returns the earliest representable point of clock C in
// period p.
func MinPoint[C Clock, R Rep](p period.Period) TimePoint[C, R] {
	return TimePoint[C, R]{since: MinValue[R](p)}
}

// MaxPoint returns the latest representable point of clock C in
// period p.
func MaxPoint[C Clock, R Rep](p period.Period) TimePoint[C, R] {
	return TimePoint[C, R]{since: MaxValue[R](p)}
}

// AddToPoint shifts a time point forward by d. The result is in the
// common period of the point and the duration.
func AddToPoint[C Clock, R Rep](t TimePoint[C, R], d Duration[R]) (TimePoint[C, R], error) {
	s, err := Add(t.since, d)
	if err != nil {
		return TimePoint[C, R]{}, err
	}
	return TimePoint[C, R]{since: s}, nil
}

// SubFromPoint shifts a time point backward by d.
func SubFromPoint[C Clock, R Rep](t TimePoint[C, R], d Duration[R]) (TimePoint[C, R], error) {
	s, err := Sub(t.since, d)
	if err != nil {
		return TimePoint[C, R]{}, err
	}
	return TimePoint[C, R]{since: s}, nil
}

// Between returns a - b as a duration in the operands' common period.
// Both points share clock C by construction.
func Between[C Clock, R Rep](a, b TimePoint[C, R]) (Duration[R], error) {
	return Sub(a.since, b.since)
}

// ComparePoints orders two points of the same clock, allowing the tick
// storage types to differ.
func ComparePoints[C Clock, R1, R2 Rep](a TimePoint[C, R1], b TimePoint[C, R2]) (int, error) {
	return Compare(a.since, b.since)
}

// CastPoint re-expresses a point's epoch offset in another period,
// truncating toward zero.
func CastPoint[RO Rep, C Clock, R Rep](t TimePoint[C, R], to period.Period) (TimePoint[C, RO], error) {
	s, err := Cast[RO](t.since, to)
	if err != nil {
		return TimePoint[C, RO]{}, err
	}
	return TimePoint[C, RO]{since: s}, nil
}

// FloorPoint is CastPoint rounding toward negative infinity.
func FloorPoint[RO Rep, C Clock, R Rep](t TimePoint[C, R], to period.Period) (TimePoint[C, RO], error) {
	s, err := Floor[RO](t.since, to)
	if err != nil {
		return TimePoint[C, RO]{}, err
	}
	return TimePoint[C, RO]{since: s}, nil
}

// CeilPoint is CastPoint rounding toward positive infinity.
func CeilPoint[RO Rep, C Clock, R Rep](t TimePoint[C, R], to period.Period) (TimePoint[C, RO], error) {
	s, err := Ceil[RO](t.since, to)
	if err != nil {
		return TimePoint[C, RO]{}, err
	}
	return TimePoint[C, RO]{since: s}, nil
}

// RoundPoint is CastPoint rounding to nearest, ties to even.
func RoundPoint[RO Rep, C Clock, R Rep](t TimePoint[C, R], to period.Period) (TimePoint[C, RO], error) {
	s, err := Round[RO](t.since, to)
	if err != nil {
		return TimePoint[C, RO]{}, err
	}
	return TimePoint[C, RO]{since: s}, nil
}
