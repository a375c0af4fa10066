package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/username/holiday-calendar/internal/calendar"
)

// Theme selects the palette used for colored output
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle switches between light and dark
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// FetchErrorText is shown when navigation could not load holiday data
const FetchErrorText = "failed to get holidays info"

var weekdayLabels = [calendar.DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiRed       = "\x1b[31m"
	ansiBrightRed = "\x1b[91m"
	ansiDim       = "\x1b[2m"
	ansiWhite     = "\x1b[97m"
)

// Options controls terminal output
type Options struct {
	Color  bool
	Theme  Theme
	Legend bool
	// Err is shown in red below the header when set
	Err error
}

type palette struct {
	flagged string
	header  string
	muted   string
}

func (o Options) palette() palette {
	if !o.Color {
		return palette{}
	}
	if o.Theme == ThemeDark {
		return palette{flagged: ansiBrightRed, header: ansiBold + ansiWhite, muted: ansiDim}
	}
	return palette{flagged: ansiRed, header: ansiBold, muted: ansiDim}
}

func paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + ansiReset
}

// Month writes a month grid. Flagged days are marked in red, or with a
// trailing '*' when color is off.
func Month(w io.Writer, view *calendar.View, opts Options) error {
	p := opts.palette()
	var b strings.Builder

	b.WriteString(paint(p.header, fmt.Sprintf(" %d - %d", view.Year, int(view.Month))))
	b.WriteString("\n")
	if opts.Err != nil {
		b.WriteString(paint(p.flagged, " "+FetchErrorText))
		b.WriteString("\n")
	}

	for _, label := range weekdayLabels {
		b.WriteString(" ")
		b.WriteString(paint(p.muted, label))
	}
	b.WriteString("\n")

	for i, row := range view.Rows {
		if i == 0 {
			b.WriteString(strings.Repeat("    ", view.Leading()))
		}
		for _, cell := range row {
			b.WriteString(formatCell(cell, opts.Color, p))
		}
		b.WriteString("\n")
	}

	if opts.Legend {
		writeLegend(&b, view, p)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatCell(cell calendar.Cell, color bool, p palette) string {
	text := fmt.Sprintf("%02d", cell.Day)
	switch {
	case !cell.Flagged:
		return "  " + text
	case color:
		return "  " + paint(p.flagged, text)
	default:
		return " " + text + "*"
	}
}

func writeLegend(b *strings.Builder, view *calendar.View, p palette) {
	cls := view.Classification
	if len(cls.Holidays) == 0 && len(cls.MakeUp) == 0 {
		return
	}

	dayList := make([]int, 0, len(cls.Holidays)+len(cls.MakeUp))
	for day := range cls.Holidays {
		dayList = append(dayList, day)
	}
	for day := range cls.MakeUp {
		dayList = append(dayList, day)
	}
	sort.Ints(dayList)

	b.WriteString("\n")
	for _, day := range dayList {
		if name, ok := cls.Holidays[day]; ok {
			b.WriteString(paint(p.flagged, fmt.Sprintf(" %02d-%02d  %s", int(view.Month), day, name)))
		} else {
			b.WriteString(fmt.Sprintf(" %02d-%02d  %s (workday)", int(view.Month), day, cls.MakeUp[day]))
		}
		b.WriteString("\n")
	}
}
