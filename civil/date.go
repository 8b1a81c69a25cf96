package civil

import "fmt"

// Date is a field-layout day: nominal month 1..12 and day 1..31.
// Out-of-range combinations are representable; Valid reports whether
// the fields name a real calendar day. Date is an immutable value.
type Date struct {
	Year  int64
	Month int
	Day   int
}

// FromFields builds a Date from explicit fields. It never fails;
// check Valid on the result.
func FromFields(year int64, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Valid reports whether the fields name a real calendar day.
func (d Date) Valid() bool {
	return IsValid(d.Year, d.Month, d.Day)
}

// String renders the date as y-m-d, with a marker for invalid field
// combinations.
func (d Date) String() string {
	if !d.Valid() {
		return fmt.Sprintf("%d-%02d-%02d (invalid)", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsValid reports whether (year, month, day) is a real calendar day:
// month in 1..12 and day in 1..DaysInMonth.
func IsValid(year int64, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// IsLeapYear implements the Gregorian rule: divisible by 4, except
// centuries, except every fourth century.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of a month, accounting for leap
// years. Months outside 1..12 report 0.
func DaysInMonth(year int64, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}
