package calendar

import "time"

// GridCellCount is the fixed size of a month grid: 6 weeks of 7 days.
const GridCellCount = 42

// FirstWeekday returns the weekday of the 1st of the month, 0 being Sunday.
// The time package uses the proleptic Gregorian calendar for every year.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DaysInMonth returns the number of days of the month (28 to 31).
func DaysInMonth(year, month int) int {
	// Day 0 of the following month normalises to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves (year, month) by offset months, carrying into the year.
// It holds for any offset, positive or negative.
func AddMonths(year, month, offset int) (int, int) {
	idx := year*12 + (month - 1) + offset
	y, m := idx/12, idx%12
	if m < 0 {
		m += 12
		y--
	}
	return y, m + 1
}

// ValidMonth reports whether month is in 1..12.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}
