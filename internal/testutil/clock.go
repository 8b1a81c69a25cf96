package testutil

import (
	"errors"
	"sync"

	"github.com/chronotope/chrono/clock"
	"github.com/chronotope/chrono/period"
	"github.com/chronotope/chrono/temporal"
)

// ErrBackward is returned when an advance would move a manual clock
// backward.
var ErrBackward = errors.New("manual clock: cannot move backward")

// ManualClock provides a thread-safe steady clock for tests that only
// moves when told to.
//
// Unlike clock.SteadyNow, ManualClock can be reset for test reuse.
// This enables the same test scenario to run multiple times with
// identical readings.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ManualClock struct {
	mu  sync.Mutex
	now temporal.TimePoint[clock.Steady, int64]
}

// NewManualClock creates a new manual clock at tick zero in nanoseconds.
func NewManualClock() *ManualClock {
	return &ManualClock{now: zeroSteady()}
}

// Now returns the current reading without advancing.
func (c *ManualClock) Now() temporal.TimePoint[clock.Steady, int64] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative durations are
// rejected so readings stay monotonic.
func (c *ManualClock) Advance(d temporal.Duration[int64]) error {
	neg, err := temporal.Less(d, temporal.Zero[int64](period.Nano))
	if err != nil {
		return err
	}
	if neg {
		return ErrBackward
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := temporal.AddToPoint(c.now, d)
	if err != nil {
		return err
	}
	c.now = next
	return nil
}

// Reset moves the clock back to tick zero for test reuse.
func (c *ManualClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = zeroSteady()
}

func zeroSteady() temporal.TimePoint[clock.Steady, int64] {
	return temporal.At[clock.Steady](temporal.Zero[int64](period.Nano))
}

// FixedLeapTable is a clock.LeapTable reporting one constant TAI-UTC
// offset regardless of the instant asked about. Conversion tests use
// it to stay independent of the shipped leap history.
type FixedLeapTable struct {
	Seconds int64
}

// TAIMinusUTC implements clock.LeapTable.
func (f FixedLeapTable) TAIMinusUTC(temporal.TimePoint[clock.UTC, int64]) (temporal.Duration[int64], error) {
	return temporal.New(f.Seconds, period.Second), nil
}
