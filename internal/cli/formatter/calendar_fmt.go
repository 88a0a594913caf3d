package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/app"
)

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// FormatMonth renders a Monday-first calendar. Completed days are green,
// planned days bold, today is bracketed.
func FormatMonth(v *app.MonthView) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s %d", v.Month, v.Year)))
	b.WriteString("\n")
	for _, d := range weekdayHeader {
		b.WriteString(Dim(fmt.Sprintf(" %2s ", d)))
	}
	b.WriteString("\n")

	col := 0
	for ; col < v.Leading; col++ {
		b.WriteString("    ")
	}
	for _, cell := range v.Days {
		b.WriteString(dayCell(cell))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s completed  %s planned  %s\n",
		StyleGreen.Render("■"), StyleBold.Render("■"),
		Dim(fmt.Sprintf("%d/%d this month", v.Completed, v.Planned))))
	return b.String()
}

func dayCell(c app.DayCell) string {
	text := fmt.Sprintf("%2d", c.Date.Day)
	switch {
	case c.Completed:
		text = StyleGreen.Render(text)
	case c.Planned:
		text = StyleBold.Render(text)
	default:
		text = Dim(text)
	}
	if c.Today {
		return "[" + text + "]"
	}
	return " " + text + " "
}
