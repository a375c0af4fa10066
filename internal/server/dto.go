package server

import (
	"fmt"
	"sort"

	"github.com/username/holiday-calendar/internal/calendar"
)

var weekdayNames = [calendar.DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthResponse is the JSON form of a month view
type MonthResponse struct {
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	DayCount     int               `json:"day_count"`
	StartWeekday int               `json:"start_weekday"`
	RowLengths   []int             `json:"row_lengths"`
	HolidayDays  []int             `json:"holiday_days"`
	MakeUpDays   []int             `json:"makeup_days"`
	Rows         [][]CellResponse  `json:"rows"`
	Skipped      []SkippedResponse `json:"skipped,omitempty"`
	Links        map[string]string `json:"links"`
}

// CellResponse is one day of a month view
type CellResponse struct {
	Day     int    `json:"day"`
	Weekday string `json:"weekday"`
	Tag     string `json:"tag"`
	Flagged bool   `json:"flagged"`
	Name    string `json:"name,omitempty"`
}

// SkippedResponse reports a record that could not be classified
type SkippedResponse struct {
	Key   string `json:"key"`
	Date  string `json:"date"`
	Error string `json:"error"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func monthPath(ym calendar.YearMonth) string {
	return fmt.Sprintf("/api/months/%d/%d", ym.Year, int(ym.Month))
}

func sortedDays(m map[int]string) []int {
	out := make([]int, 0, len(m))
	for day := range m {
		out = append(out, day)
	}
	sort.Ints(out)
	return out
}

// ToMonthResponse converts a view to its JSON form
func ToMonthResponse(view *calendar.View) MonthResponse {
	resp := MonthResponse{
		Year:         view.Year,
		Month:        int(view.Month),
		DayCount:     view.Geometry.DayCount,
		StartWeekday: int(view.Geometry.StartWeekday),
		RowLengths:   view.Geometry.RowLengths,
		HolidayDays:  sortedDays(view.Classification.Holidays),
		MakeUpDays:   sortedDays(view.Classification.MakeUp),
		Rows:         make([][]CellResponse, 0, len(view.Rows)),
		Links: map[string]string{
			"self": monthPath(view.YearMonth),
			"prev": monthPath(view.YearMonth.Prev()),
			"next": monthPath(view.YearMonth.Next()),
		},
	}

	for _, row := range view.Rows {
		cells := make([]CellResponse, 0, len(row))
		for _, cell := range row {
			cells = append(cells, CellResponse{
				Day:     cell.Day,
				Weekday: weekdayNames[cell.Weekday],
				Tag:     cell.Tag.String(),
				Flagged: cell.Flagged,
				Name:    cell.Name,
			})
		}
		resp.Rows = append(resp.Rows, cells)
	}

	for _, skipped := range view.Classification.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedResponse{
			Key:   skipped.Key,
			Date:  skipped.Date,
			Error: skipped.Err.Error(),
		})
	}

	return resp
}
