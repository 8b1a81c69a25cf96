// Package temporal provides generic durations and clock-tagged time
// points over rational tick periods.
//
// A Duration pairs a tick count (one of the Rep storage types) with a
// period.Period. Two durations with different periods never combine
// implicitly: every cross-unit operation computes the common period
// (gcd of numerators over lcm of denominators), re-expresses both
// operands in it with overflow-checked 128-bit arithmetic, and only
// then combines them.
//
// A TimePoint carries its clock as a type parameter. Arithmetic
// between time points of different clocks is therefore a compile
// error, not a runtime condition; callers cross clocks only through
// the explicit conversion functions in package clock.
//
// Key design constraints:
//   - Overflow is detected before a value is corrupted (ErrOverflow),
//     never wrapped
//   - Integer casts truncate toward zero; Floor, Ceil and Round are
//     separate, named operations, with Round breaking exact halfway
//     ties toward the even candidate
//   - No operation panics on bad input; every fallible operation
//     returns an error
package temporal
