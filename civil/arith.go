package civil

// AddDays shifts a date by n days in serial layout. The result is
// always a valid date: integer addition on the day count, then the
// inverse mapping.
func AddDays(d Date, n int64) Date {
	return CivilFromDays(DaysFromCivil(d.Year, d.Month, d.Day) + n)
}

// AddMonths shifts a date by n months in field layout, carrying into
// the year. The day field is kept as-is, so the result may be invalid
// (Jan 31 + 1 month is Feb 31, Valid() == false). The choice of what
// to do then belongs to the caller; ClampToMonthEnd is the documented
// policy for snapping to the last real day.
func AddMonths(d Date, n int64) Date {
	months := d.Year*12 + int64(d.Month) - 1 + n
	y := months / 12
	m := months % 12
	if m < 0 {
		m += 12
		y--
	}
	return Date{Year: y, Month: int(m) + 1, Day: d.Day}
}

// AddYears shifts a date by n years in field layout. Like AddMonths
// it never clamps: Feb 29 + 1 year reports Valid() == false on a
// non-leap target year.
func AddYears(d Date, n int64) Date {
	return AddMonths(d, n*12)
}

// ClampToMonthEnd is the explicit clamp policy: a date whose day
// overflows its month snaps to the month's last real day. Dates with
// an out-of-range month are returned unchanged; there is no sensible
// day to clamp to.
func ClampToMonthEnd(d Date) Date {
	last := DaysInMonth(d.Year, d.Month)
	if last == 0 {
		return d
	}
	if d.Day > last {
		d.Day = last
	}
	if d.Day < 1 {
		d.Day = 1
	}
	return d
}
