// Package civil provides the field-layout calendar: dates as named
// year/month/day fields with an explicit validity flag, and the exact
// bidirectional mapping to a serial day count.
//
// Construction never fails and never aborts: an out-of-range field
// combination (month 13, February 30) is representable and simply
// reports Valid() == false, leaving the reaction to the caller. This
// is a single, predictable failure convention; there is no second
// "checked" constructor.
//
// The serial mapping is a closed-form integer algorithm over 400-year
// Gregorian eras. It loops over nothing, uses no floating point, and
// round-trips exactly: CivilFromDays(DaysFromCivil(y,m,d)) == (y,m,d)
// for every valid date and DaysFromCivil(CivilFromDays(n)) == n for
// every serial count in range. Day zero is 1970-01-01.
//
// Field arithmetic (AddMonths, AddYears) carries into the year and
// deliberately does NOT clamp a day that overflows the target month;
// the result reports Valid() == false and ClampToMonthEnd is the
// explicit opt-in policy.
package civil
