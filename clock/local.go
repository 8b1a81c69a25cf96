package clock

import (
	"github.com/chronotope/chrono/temporal"
)

// OffsetLookup supplies the local UTC offset in effect at a realtime
// instant. It is an external collaborator (a timezone database front);
// FixedOffset is the trivial implementation. Implementations must be
// safe for concurrent use.
type OffsetLookup interface {
	// OffsetAt returns local-minus-UTC at the given instant, in whole
	// seconds east of UTC.
	OffsetAt(at temporal.TimePoint[System, int64]) (temporal.Duration[int64], error)
}

// FixedOffset is an OffsetLookup with a constant offset, for zones
// without transitions and for tests.
type FixedOffset struct {
	Seconds int64
}

// OffsetAt implements OffsetLookup.
func (o FixedOffset) OffsetAt(temporal.TimePoint[System, int64]) (temporal.Duration[int64], error) {
	return temporal.Seconds(o.Seconds), nil
}

// SystemToLocal reinterprets a realtime point through the supplied
// offset. Local is not an independent clock: the result is the same
// instant shifted so that its epoch offset reads as local civil time.
// There is no LocalNow; read SystemNow and convert explicitly.
func SystemToLocal(tp temporal.TimePoint[System, int64], zone OffsetLookup) (temporal.TimePoint[Local, int64], error) {
	var zero temporal.TimePoint[Local, int64]
	off, err := zone.OffsetAt(tp)
	if err != nil {
		return zero, err
	}
	s, err := temporal.Add(tp.SinceEpoch(), off)
	if err != nil {
		return zero, err
	}
	return temporal.At[Local](s), nil
}

// LocalToSystem undoes SystemToLocal. The offset lookup is keyed by
// the realtime instant, so the first-guess reinterpretation is
// corrected with a second lookup; around a transition the local
// reading may be ambiguous or skipped, and the second pass settles on
// the offset in effect at the corrected instant.
func LocalToSystem(tp temporal.TimePoint[Local, int64], zone OffsetLookup) (temporal.TimePoint[System, int64], error) {
	var zero temporal.TimePoint[System, int64]
	guess := temporal.At[System](tp.SinceEpoch())
	off, err := zone.OffsetAt(guess)
	if err != nil {
		return zero, err
	}
	s, err := temporal.Sub(tp.SinceEpoch(), off)
	if err != nil {
		return zero, err
	}
	off, err = zone.OffsetAt(temporal.At[System](s))
	if err != nil {
		return zero, err
	}
	s, err = temporal.Sub(tp.SinceEpoch(), off)
	if err != nil {
		return zero, err
	}
	return temporal.At[System](s), nil
}
