package clock

import (
	"github.com/chronotope/chrono/period"
	"github.com/chronotope/chrono/temporal"
)

// Each conversion below is an independent pure function keyed to the
// UTC pivot. None of them chains through another clock on the caller's
// behalf.

// FileTimePeriod is the Windows file clock tick: 100 ns.
var FileTimePeriod = period.MustNew(1, 10_000_000)

// fileTimeEpochTicks is the span from 1601-01-01 to 1970-01-01 in
// 100 ns ticks (11644473600 s).
const fileTimeEpochTicks int64 = 116_444_736_000_000_000

// gpsMinusTAISeconds pins GPS time 19 s behind TAI (the TAI-UTC
// offset at the 1980 GPS epoch).
const gpsMinusTAISeconds int64 = -19

// SystemToUTC reinterprets a realtime reading on the UTC timescale.
// The Unix count and UTC share an epoch, so the offset is zero; the
// conversion exists so the crossing is visible in the caller's code.
func SystemToUTC(tp temporal.TimePoint[System, int64]) temporal.TimePoint[UTC, int64] {
	return temporal.At[UTC](tp.SinceEpoch())
}

// UTCToSystem is the inverse of SystemToUTC.
func UTCToSystem(tp temporal.TimePoint[UTC, int64]) temporal.TimePoint[System, int64] {
	return temporal.At[System](tp.SinceEpoch())
}

// UTCToTAI shifts a UTC point onto the TAI timescale using the
// supplied leap table.
func UTCToTAI(tp temporal.TimePoint[UTC, int64], leaps LeapTable) (temporal.TimePoint[TAI, int64], error) {
	off, err := leaps.TAIMinusUTC(tp)
	if err != nil {
		return temporal.TimePoint[TAI, int64]{}, err
	}
	s, err := temporal.Add(tp.SinceEpoch(), off)
	if err != nil {
		return temporal.TimePoint[TAI, int64]{}, err
	}
	return temporal.At[TAI](s), nil
}

// TAIToUTC shifts a TAI point onto the UTC timescale. The offset is
// keyed by UTC, so the lookup runs twice: once with the TAI reading as
// a first guess, once with the corrected instant. Two passes settle
// every instant except inside a leap insertion itself, where UTC is
// ambiguous by construction.
func TAIToUTC(tp temporal.TimePoint[TAI, int64], leaps LeapTable) (temporal.TimePoint[UTC, int64], error) {
	var zero temporal.TimePoint[UTC, int64]
	guess := temporal.At[UTC](tp.SinceEpoch())
	off, err := leaps.TAIMinusUTC(guess)
	if err != nil {
		return zero, err
	}
	s, err := temporal.Sub(tp.SinceEpoch(), off)
	if err != nil {
		return zero, err
	}
	off, err = leaps.TAIMinusUTC(temporal.At[UTC](s))
	if err != nil {
		return zero, err
	}
	s, err = temporal.Sub(tp.SinceEpoch(), off)
	if err != nil {
		return zero, err
	}
	return temporal.At[UTC](s), nil
}

// UTCToGPS shifts a UTC point onto the GPS timescale:
// GPS = UTC + (TAI-UTC) - 19 s.
func UTCToGPS(tp temporal.TimePoint[UTC, int64], leaps LeapTable) (temporal.TimePoint[GPS, int64], error) {
	var zero temporal.TimePoint[GPS, int64]
	off, err := leaps.TAIMinusUTC(tp)
	if err != nil {
		return zero, err
	}
	s, err := temporal.Add(tp.SinceEpoch(), off)
	if err != nil {
		return zero, err
	}
	s, err = temporal.Add(s, temporal.Seconds(gpsMinusTAISeconds))
	if err != nil {
		return zero, err
	}
	return temporal.At[GPS](s), nil
}

// GPSToUTC shifts a GPS point onto the UTC timescale, refining the
// UTC-keyed lookup the same way as TAIToUTC.
func GPSToUTC(tp temporal.TimePoint[GPS, int64], leaps LeapTable) (temporal.TimePoint[UTC, int64], error) {
	var zero temporal.TimePoint[UTC, int64]
	guess := temporal.At[UTC](tp.SinceEpoch())
	utc, err := gpsCorrect(tp, guess, leaps)
	if err != nil {
		return zero, err
	}
	return gpsCorrect(tp, utc, leaps)
}

// gpsCorrect computes UTC = GPS - (TAI-UTC at the guess) + 19 s.
func gpsCorrect(tp temporal.TimePoint[GPS, int64], guess temporal.TimePoint[UTC, int64], leaps LeapTable) (temporal.TimePoint[UTC, int64], error) {
	var zero temporal.TimePoint[UTC, int64]
	off, err := leaps.TAIMinusUTC(guess)
	if err != nil {
		return zero, err
	}
	s, err := temporal.Sub(tp.SinceEpoch(), off)
	if err != nil {
		return zero, err
	}
	s, err = temporal.Sub(s, temporal.Seconds(gpsMinusTAISeconds))
	if err != nil {
		return zero, err
	}
	return temporal.At[UTC](s), nil
}

// UTCToFileTime shifts a UTC point onto the Windows file clock:
// 100 ns ticks since 1601-01-01, truncating sub-tick precision toward
// zero.
func UTCToFileTime(tp temporal.TimePoint[UTC, int64]) (temporal.TimePoint[FileTime, int64], error) {
	var zero temporal.TimePoint[FileTime, int64]
	ticks, err := temporal.Cast[int64](tp.SinceEpoch(), FileTimePeriod)
	if err != nil {
		return zero, err
	}
	s, err := temporal.Add(ticks, temporal.New(fileTimeEpochTicks, FileTimePeriod))
	if err != nil {
		return zero, err
	}
	return temporal.At[FileTime](s), nil
}

// FileTimeToUTC is the inverse of UTCToFileTime, yielding nanosecond
// resolution.
func FileTimeToUTC(tp temporal.TimePoint[FileTime, int64]) (temporal.TimePoint[UTC, int64], error) {
	var zero temporal.TimePoint[UTC, int64]
	s, err := temporal.Sub(tp.SinceEpoch(), temporal.New(fileTimeEpochTicks, FileTimePeriod))
	if err != nil {
		return zero, err
	}
	ns, err := temporal.Cast[int64](s, period.Nano)
	if err != nil {
		return zero, err
	}
	return temporal.At[UTC](ns), nil
}
