// Package period provides reduced rational tick periods.
//
// A Period is the fixed fraction of a second that one tick of a
// duration represents. Periods are immutable values, always held in
// lowest terms with a positive numerator and denominator. All other
// packages build on period; period imports nothing internal, keeping
// it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - NO floating point in comparisons - cross multiplication only
//   - Overflow is detected, never wrapped (ErrOverflow)
//   - A zero denominator is rejected at construction (ErrInvalidPeriod)
package period
