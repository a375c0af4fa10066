package tray

import (
	"fmt"
	"strings"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/render"
)

// Title returns the text shown next to the tray icon
func Title(view *calendar.View) string {
	return fmt.Sprintf("%d - %d", view.Year, int(view.Month))
}

// Tooltip lists the flagged days of the view, with record names when known
func Tooltip(view *calendar.View, err error) string {
	var b strings.Builder
	b.WriteString(Title(view))

	var flagged []string
	for _, cell := range view.Cells() {
		if !cell.Flagged {
			continue
		}
		if cell.Name != "" {
			flagged = append(flagged, fmt.Sprintf("%02d %s", cell.Day, cell.Name))
		} else {
			flagged = append(flagged, fmt.Sprintf("%02d", cell.Day))
		}
	}
	if len(flagged) > 0 {
		b.WriteString("\nOff: ")
		b.WriteString(strings.Join(flagged, ", "))
	}

	var makeUp []string
	for _, cell := range view.Cells() {
		if cell.Tag == calendar.DayTagMakeUpWorkday {
			makeUp = append(makeUp, fmt.Sprintf("%02d", cell.Day))
		}
	}
	if len(makeUp) > 0 {
		b.WriteString("\nWorkdays: ")
		b.WriteString(strings.Join(makeUp, ", "))
	}

	if err != nil {
		b.WriteString("\n")
		b.WriteString(render.FetchErrorText)
	}

	return b.String()
}
