package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronotope/chrono/clock"
	"github.com/chronotope/chrono/period"
	"github.com/chronotope/chrono/temporal"
)

func TestManualClock_StartsAtZero(t *testing.T) {
	c := NewManualClock()
	assert.Equal(t, int64(0), c.Now().SinceEpoch().Count())
}

func TestManualClock_AdvanceMovesForward(t *testing.T) {
	c := NewManualClock()

	require.NoError(t, c.Advance(temporal.Milliseconds(250)))
	require.NoError(t, c.Advance(temporal.Seconds(1)))

	// Readings come back in nanoseconds, the manual clock's base period.
	now := c.Now()
	assert.Equal(t, int64(1_250_000_000), now.SinceEpoch().Count())
	assert.True(t, now.SinceEpoch().Period().Equal(period.Nano))
}

func TestManualClock_RejectsBackwardStep(t *testing.T) {
	c := NewManualClock()
	require.NoError(t, c.Advance(temporal.Seconds(5)))

	err := c.Advance(temporal.Seconds(-1))
	require.ErrorIs(t, err, ErrBackward)

	// Reading unchanged after a rejected advance.
	assert.Equal(t, int64(5_000_000_000), c.Now().SinceEpoch().Count())
}

func TestManualClock_Reset(t *testing.T) {
	c := NewManualClock()
	require.NoError(t, c.Advance(temporal.Hours(3)))
	c.Reset()
	assert.Equal(t, int64(0), c.Now().SinceEpoch().Count())
}

func TestManualClock_ConcurrentAdvance(t *testing.T) {
	c := NewManualClock()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				require.NoError(t, c.Advance(temporal.Nanoseconds(1)))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), c.Now().SinceEpoch().Count())
}

func TestFixedLeapTable(t *testing.T) {
	table := FixedLeapTable{Seconds: 37}

	at := temporal.At[clock.UTC](temporal.Seconds(1_500_000_000))
	offset, err := table.TAIMinusUTC(at)
	require.NoError(t, err)
	assert.Equal(t, int64(37), offset.Count())
	assert.True(t, offset.Period().Equal(period.Second))
}
