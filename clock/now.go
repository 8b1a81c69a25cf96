package clock

import (
	"time"

	"github.com/chronotope/chrono/temporal"
)

// Steady clock zero point, initialized at package load time. Readings
// are time.Since against it, which uses the runtime's monotonic
// reading and therefore never decreases.
var steadyEpoch = time.Now()

// SteadyNow reads the monotonic process clock: nanoseconds since
// process start. Safe for concurrent use; reads ordered in real time
// return non-decreasing points.
func SteadyNow() temporal.TimePoint[Steady, int64] {
	return temporal.At[Steady](temporal.Nanoseconds(time.Since(steadyEpoch).Nanoseconds()))
}

// SystemNow reads the realtime wall clock: nanoseconds since the Unix
// epoch. Safe for concurrent use. Not steady; the value can jump when
// the operating system adjusts the clock.
func SystemNow() temporal.TimePoint[System, int64] {
	return temporal.At[System](temporal.Nanoseconds(time.Now().UnixNano()))
}

// UTCNow reads the wall clock and converts it through the named
// System-to-UTC conversion.
func UTCNow() temporal.TimePoint[UTC, int64] {
	return SystemToUTC(SystemNow())
}
