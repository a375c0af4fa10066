package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DaysPerWeek is the number of grid columns
const DaysPerWeek = 7

// ErrInvalidMonth is returned for a month outside 1..12
var ErrInvalidMonth = errors.New("invalid month")

// sakamotoOffsets are the month offsets of Sakamoto's weekday method
var sakamotoOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// IsLeapYear applies the Gregorian leap year rule
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of a valid month, 0 otherwise
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July,
		time.August, time.October, time.December:
		return 31
	default:
		return 0
	}
}

// WeekdayOf computes the proleptic Gregorian weekday of a date.
// The month must be valid.
func WeekdayOf(year int, month time.Month, day int) time.Weekday {
	y := year
	if month < time.March {
		y--
	}
	w := y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) +
		sakamotoOffsets[month-1] + day
	return time.Weekday(floorMod(w, DaysPerWeek))
}

// RowLengths splits dayCount days into week rows, the first row starting
// at column start. The sum of the result equals dayCount.
func RowLengths(dayCount int, start time.Weekday) []int {
	if dayCount <= 0 {
		return []int{}
	}

	offset := int(start)
	rows := (dayCount + offset + DaysPerWeek - 1) / DaysPerWeek
	lengths := make([]int, 0, rows)

	for i := 1; i <= rows; i++ {
		var n int
		switch {
		case i == 1:
			n = DaysPerWeek - offset
			if n > dayCount {
				n = dayCount
			}
		case i < rows:
			n = DaysPerWeek
		default:
			n = dayCount - (DaysPerWeek*(rows-1) - offset)
		}
		lengths = append(lengths, n)
	}

	return lengths
}

// ComputeGeometry returns the day count, start weekday and row partition of a month
func ComputeGeometry(year int, month time.Month) (Geometry, error) {
	if month < time.January || month > time.December {
		return Geometry{}, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}

	dayCount := DaysInMonth(year, month)
	start := WeekdayOf(year, month, 1)

	return Geometry{
		DayCount:     dayCount,
		StartWeekday: start,
		RowLengths:   RowLengths(dayCount, start),
	}, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
