package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
)

// Classify collects the holiday days and make-up workdays of a month.
//
// Records are visited in ascending key order; when several records fall on
// the same day the last one visited wins, so a day ends up in at most one
// of the two maps. Records with an unparseable date are reported in
// Skipped and do not abort the classification. An empty or nil dataset
// yields empty maps.
func Classify(ds *Dataset, year int, month time.Month) (Classification, error) {
	cls := Classification{
		Holidays: make(map[int]string),
		MakeUp:   make(map[int]string),
	}

	if month < time.January || month > time.December {
		return cls, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}

	if ds.Len() == 0 {
		return cls, nil
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)

	keys := make([]string, 0, len(ds.Records))
	for key := range ds.Records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		record := ds.Records[key]

		date, err := dateutil.ParseDate(record.Date)
		if err != nil {
			cls.Skipped = append(cls.Skipped, SkippedRecord{
				Key:  key,
				Date: record.Date,
				Err:  err,
			})
			continue
		}

		// Inclusive on both ends
		if date.Before(first) || date.After(last) {
			continue
		}

		day := date.Day()
		if record.IsHoliday {
			cls.Holidays[day] = record.Name
			delete(cls.MakeUp, day)
		} else {
			cls.MakeUp[day] = record.Name
			delete(cls.Holidays, day)
		}
	}

	return cls, nil
}

// IsHoliday reports whether day is an explicit holiday
func (c Classification) IsHoliday(day int) bool {
	_, ok := c.Holidays[day]
	return ok
}

// IsMakeUp reports whether day is a compensatory workday
func (c Classification) IsMakeUp(day int) bool {
	_, ok := c.MakeUp[day]
	return ok
}

// Tag returns the classification of a single day
func (c Classification) Tag(day int) DayTag {
	switch {
	case c.IsHoliday(day):
		return DayTagHoliday
	case c.IsMakeUp(day):
		return DayTagMakeUpWorkday
	default:
		return DayTagOrdinary
	}
}
