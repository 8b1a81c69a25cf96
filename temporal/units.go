package temporal

import "github.com/chronotope/chrono/period"

// Named unit constructors. Each is a Duration instantiation over a
// fixed predefined period with int64 storage; callers needing other
// Reps build with New directly.

// Nanoseconds returns a duration of n nanosecond ticks.
func Nanoseconds(n int64) Duration[int64] { return New(n, period.Nano) }

// Microseconds returns a duration of n microsecond ticks.
func Microseconds(n int64) Duration[int64] { return New(n, period.Micro) }

// Milliseconds returns a duration of n millisecond ticks.
func Milliseconds(n int64) Duration[int64] { return New(n, period.Milli) }

// Seconds returns a duration of n second ticks.
func Seconds(n int64) Duration[int64] { return New(n, period.Second) }

// Minutes returns a duration of n minute ticks.
func Minutes(n int64) Duration[int64] { return New(n, period.Minute) }

// Hours returns a duration of n hour ticks.
func Hours(n int64) Duration[int64] { return New(n, period.Hour) }

// Days returns a duration of n day ticks (86400 s each).
func Days(n int64) Duration[int64] { return New(n, period.Day) }

// Weeks returns a duration of n week ticks.
func Weeks(n int64) Duration[int64] { return New(n, period.Week) }

// Months returns a duration of n averaged-Gregorian months
// (2629746 s each). This unit is NOT calendar-exact: adding it to a
// time point does not land on the same day of the next month. Use
// civil.AddMonths for field-exact month arithmetic.
func Months(n int64) Duration[int64] { return New(n, period.Month) }

// Years returns a duration of n averaged-Gregorian years
// (31556952 s each). NOT calendar-exact; see Months.
func Years(n int64) Duration[int64] { return New(n, period.Year) }
