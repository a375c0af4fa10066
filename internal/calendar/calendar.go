package calendar

import (
	"fmt"
	"time"
)

// DayTag represents the display classification of a day
type DayTag int

const (
	DayTagOrdinary DayTag = iota + 1
	DayTagHoliday
	DayTagMakeUpWorkday
)

// String returns the wire name of the tag
func (t DayTag) String() string {
	switch t {
	case DayTagOrdinary:
		return "ordinary"
	case DayTagHoliday:
		return "holiday"
	case DayTagMakeUpWorkday:
		return "makeup_workday"
	default:
		return fmt.Sprintf("DayTag(%d)", int(t))
	}
}

// Record represents one entry of a holiday dataset.
// IsHoliday false means a compensatory workday worked despite being a weekend.
type Record struct {
	IsHoliday bool    `json:"holiday"`
	Name      string  `json:"name"`
	Wage      int     `json:"wage"`
	Date      string  `json:"date"`
	Rest      *int    `json:"rest,omitempty"`
	After     *bool   `json:"after,omitempty"`
	Target    *string `json:"target,omitempty"`
}

// Dataset is the holiday data of a single year as delivered by a provider
type Dataset struct {
	Code    int               `json:"code"`
	Records map[string]Record `json:"holiday"`
}

// Len returns the number of records, zero for a nil dataset
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Geometry describes how a month is laid out on a 7-column grid
type Geometry struct {
	DayCount     int
	StartWeekday time.Weekday
	RowLengths   []int
}

// SkippedRecord is a diagnostic for a record the classifier could not use
type SkippedRecord struct {
	Key  string
	Date string
	Err  error
}

// Classification holds the days of a month that carry holiday data.
// Both maps are keyed by day-of-month and hold the record name.
type Classification struct {
	Holidays map[int]string
	MakeUp   map[int]string
	Skipped  []SkippedRecord
}

// YearMonth is an immutable (year, month) pair used for navigation
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth returns a YearMonth or ErrInvalidMonth
func NewYearMonth(year int, month time.Month) (YearMonth, error) {
	ym := YearMonth{Year: year, Month: month}
	if !ym.Valid() {
		return YearMonth{}, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	return ym, nil
}

// YearMonthOf returns the month containing t in t's location
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Valid reports whether the month is within 1..12
func (ym YearMonth) Valid() bool {
	return ym.Month >= time.January && ym.Month <= time.December
}

// Next returns the following month, rolling over into the next year
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// Prev returns the preceding month, rolling back into the previous year
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// String formats the value as YYYY-MM
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
