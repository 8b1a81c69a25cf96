package civil

import (
	"github.com/chronotope/chrono/clock"
	"github.com/chronotope/chrono/period"
	"github.com/chronotope/chrono/temporal"
)

// The serial mapping works in 400-year Gregorian eras of exactly
// 146097 days, with years internally rebased to start in March so
// that the leap day is the last day of the rebased year. Both
// directions are closed-form integer arithmetic.

// DaysFromCivil maps calendar fields to the serial day count since
// 1970-01-01. Fields are NOT validated first: a nominally out-of-range
// day or month still maps deterministically, overflowing into the
// following month or year (April 31 lands on May 1). Validity is the
// separate, explicit IsValid check.
func DaysFromCivil(year int64, month, day int) int64 {
	y := year
	m := int64(month)
	d := int64(day)
	if m <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// CivilFromDays maps a serial day count since 1970-01-01 back to
// calendar fields. It is the exact inverse of DaysFromCivil for every
// count in range; the result is always a valid date because every
// integer has an inverse civil date.
func CivilFromDays(serial int64) Date {
	z := serial + 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097                                        // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365       // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)                     // [0, 365]
	mp := (5*doy + 2) / 153                                      // [0, 11]
	d := doy - (153*mp+2)/5 + 1                                  // [1, 31]
	m := mp
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}
	return Date{Year: y, Month: int(m), Day: int(d)}
}

// Weekday numbering for serial counts; day zero (1970-01-01) is a
// Thursday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (w Weekday) String() string {
	if w < 0 || w > 6 {
		return "Weekday(?)"
	}
	return weekdayNames[w]
}

// WeekdayFromDays returns the day of week of a serial count.
func WeekdayFromDays(serial int64) Weekday {
	if serial >= -4 {
		return Weekday((serial + 4) % 7)
	}
	return Weekday((serial+5)%7 + 6)
}

// Weekday returns the day of week of a date via its serial count.
func (d Date) Weekday() Weekday {
	return WeekdayFromDays(DaysFromCivil(d.Year, d.Month, d.Day))
}

// DayPoint returns the date as a day-resolution UTC time point. A
// CivilDate and this point denote the same instant.
func (d Date) DayPoint() temporal.TimePoint[clock.UTC, int64] {
	serial := DaysFromCivil(d.Year, d.Month, d.Day)
	return temporal.At[clock.UTC](temporal.New(serial, period.Day))
}

// FromDayPoint converts a UTC time point of any period to the civil
// date containing it, flooring toward negative infinity so that any
// instant inside a day maps to that day.
func FromDayPoint[R temporal.Rep](tp temporal.TimePoint[clock.UTC, R]) (Date, error) {
	days, err := temporal.FloorPoint[int64](tp, period.Day)
	if err != nil {
		return Date{}, err
	}
	return CivilFromDays(days.SinceEpoch().Count()), nil
}
