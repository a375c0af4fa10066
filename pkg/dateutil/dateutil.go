package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used by holiday datasets
const DateLayout = "2006-01-02"

// dateLayouts are tried in order by ParseDate.
// "2006-1-2" also accepts zero padded input.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"02.01.2006",
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day) in local time
func Today() time.Time {
	return StartOfDay(time.Now())
}

// ParseDate parses a calendar date in one of the supported layouts.
// The result is midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// FormatDate formats date with DateLayout
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}
