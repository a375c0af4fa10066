package calendar

import (
	"time"
)

// IsFlagged reports whether a day gets holiday styling: explicit holidays
// and Sundays that are not compensatory workdays. Saturday is not flagged
// on its own.
func IsFlagged(day int, weekday time.Weekday, cls Classification) bool {
	if cls.IsHoliday(day) {
		return true
	}
	return weekday == time.Sunday && !cls.IsMakeUp(day)
}

// Cell is a single display cell of a month view
type Cell struct {
	Day     int
	Weekday time.Weekday
	Tag     DayTag
	Flagged bool
	Name    string
}

// View is a month laid out in rows of pre-classified cells
type View struct {
	YearMonth
	Geometry       Geometry
	Classification Classification
	Rows           [][]Cell
}

// Leading returns the number of blank cells before day 1
func (v *View) Leading() int {
	return int(v.Geometry.StartWeekday)
}

// BuildView computes geometry and classification for a month and lays the
// days out in rows
func BuildView(ds *Dataset, year int, month time.Month) (*View, error) {
	geometry, err := ComputeGeometry(year, month)
	if err != nil {
		return nil, err
	}

	cls, err := Classify(ds, year, month)
	if err != nil {
		return nil, err
	}

	view := &View{
		YearMonth:      YearMonth{Year: year, Month: month},
		Geometry:       geometry,
		Classification: cls,
		Rows:           make([][]Cell, 0, len(geometry.RowLengths)),
	}

	day := 1
	for _, length := range geometry.RowLengths {
		row := make([]Cell, 0, length)
		for i := 0; i < length; i++ {
			weekday := time.Weekday((int(geometry.StartWeekday) + day - 1) % DaysPerWeek)

			name := cls.Holidays[day]
			if name == "" {
				name = cls.MakeUp[day]
			}

			row = append(row, Cell{
				Day:     day,
				Weekday: weekday,
				Tag:     cls.Tag(day),
				Flagged: IsFlagged(day, weekday, cls),
				Name:    name,
			})
			day++
		}
		view.Rows = append(view.Rows, row)
	}

	return view, nil
}

// Cells returns all cells in day order
func (v *View) Cells() []Cell {
	cells := make([]Cell, 0, v.Geometry.DayCount)
	for _, row := range v.Rows {
		cells = append(cells, row...)
	}
	return cells
}
