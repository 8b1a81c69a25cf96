package clock

import (
	"errors"

	"github.com/chronotope/chrono/period"
	"github.com/chronotope/chrono/temporal"
)

// ErrBeforeTable indicates a lookup earlier than the first entry of a
// leap-second table. TAI-UTC is not defined by the table there; the
// caller decides how to extrapolate.
var ErrBeforeTable = errors.New("instant precedes leap-second table")

// LeapTable supplies the accumulated TAI-UTC offset at a UTC instant.
// It is an external collaborator: the built-in StaticLeapTable covers
// the published IERS history, and internal/tzstore provides a
// database-backed implementation that can be refreshed.
//
// Implementations must be safe for concurrent use.
type LeapTable interface {
	// TAIMinusUTC returns TAI-UTC, in whole seconds, effective at the
	// given UTC instant.
	TAIMinusUTC(utc temporal.TimePoint[UTC, int64]) (temporal.Duration[int64], error)
}

// leapStep is one row of the static table: from sinceUnix (seconds,
// UTC) onward, TAI-UTC equals offset seconds.
type leapStep struct {
	sinceUnix int64
	offset    int64
}

// staticLeaps is the published leap-second history: cumulative TAI-UTC
// after each insertion, from the start of the modern UTC system in
// 1972 through the 2017-01-01 insertion (TAI-UTC = 37 s, still
// current).
var staticLeaps = []leapStep{
	{63072000, 10},   // 1972-01-01
	{78796800, 11},   // 1972-07-01
	{94694400, 12},   // 1973-01-01
	{126230400, 13},  // 1974-01-01
	{157766400, 14},  // 1975-01-01
	{189302400, 15},  // 1976-01-01
	{220924800, 16},  // 1977-01-01
	{252460800, 17},  // 1978-01-01
	{283996800, 18},  // 1979-01-01
	{315532800, 19},  // 1980-01-01
	{362793600, 20},  // 1981-07-01
	{394329600, 21},  // 1982-07-01
	{425865600, 22},  // 1983-07-01
	{489024000, 23},  // 1985-07-01
	{568080000, 24},  // 1988-01-01
	{631152000, 25},  // 1990-01-01
	{662688000, 26},  // 1991-01-01
	{709948800, 27},  // 1992-07-01
	{741484800, 28},  // 1993-07-01
	{773020800, 29},  // 1994-07-01
	{820454400, 30},  // 1996-01-01
	{867715200, 31},  // 1997-07-01
	{915148800, 32},  // 1999-01-01
	{1136073600, 33}, // 2006-01-01
	{1230768000, 34}, // 2009-01-01
	{1341100800, 35}, // 2012-07-01
	{1435708800, 36}, // 2015-07-01
	{1483228800, 37}, // 2017-01-01
}

// StaticLeapTable is the built-in LeapTable over the published
// history. It is a value: callers can pass it directly or substitute
// a refreshable implementation with the same shape.
type StaticLeapTable struct{}

// TAIMinusUTC implements LeapTable over the embedded history.
func (StaticLeapTable) TAIMinusUTC(utc temporal.TimePoint[UTC, int64]) (temporal.Duration[int64], error) {
	secs, err := temporal.Floor[int64](utc.SinceEpoch(), period.Second)
	if err != nil {
		return temporal.Duration[int64]{}, err
	}
	at := secs.Count()
	for i := len(staticLeaps) - 1; i >= 0; i-- {
		if at >= staticLeaps[i].sinceUnix {
			return temporal.Seconds(staticLeaps[i].offset), nil
		}
	}
	return temporal.Duration[int64]{}, ErrBeforeTable
}
