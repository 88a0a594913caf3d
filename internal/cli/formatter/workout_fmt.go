package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/planner"
)

// FormatWorkout renders one planned day with its per-set targets.
func FormatWorkout(w domain.WorkoutDay, today domain.Date, completed bool) string {
	var b strings.Builder

	title := fmt.Sprintf("Day %d · Week %d", w.DayNumber, w.WeekNumber)
	b.WriteString(StyleBold.Render(title))
	b.WriteString("  ")
	b.WriteString(LoadBadge(w.Focus))
	if w.IsMaxCheck {
		b.WriteString("  ")
		b.WriteString(StylePurple.Render("▲ MAX CHECK"))
	}
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s (%s) · %s", HumanDate(w.Date), RelativeDay(w.Date, today), w.ID)))
	b.WriteString("\n\n")

	headers := []string{"EXERCISE", "SETS", "TOTAL", "REST", "NOTE"}
	rows := make([][]string, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		reps := make([]int, len(ex.Sets))
		rest := 0
		for i, s := range ex.Sets {
			reps[i] = s.TargetReps
			rest = s.RestSeconds
		}
		rows = append(rows, []string{
			ExerciseLabel(ex.Kind),
			FormatReps(reps),
			fmt.Sprintf("%d", planner.ExerciseTarget(ex)),
			FormatRest(rest),
			Dim(ex.Note),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if completed {
		b.WriteString(StyleGreen.Render("✔ Completed"))
	} else {
		b.WriteString(Dim(fmt.Sprintf("Target: %d reps", planner.TotalTargetReps(w))))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatPlan renders plan days as a compact table, one row per training day.
func FormatPlan(days []domain.WorkoutDay, completed map[domain.Date]bool, today domain.Date) string {
	if len(days) == 0 {
		return Dim("No training days in range.") + "\n"
	}

	headers := []string{"DAY", "DATE", "FOCUS"}
	for _, kind := range domain.ExerciseKinds {
		headers = append(headers, strings.ToUpper(ExerciseLabel(kind)))
	}
	headers = append(headers, "")

	rows := make([][]string, 0, len(days))
	for _, w := range days {
		row := []string{
			fmt.Sprintf("%d", w.DayNumber),
			HumanDate(w.Date),
			LoadColor(w.Focus).Render(string(w.Focus)),
		}
		for _, kind := range domain.ExerciseKinds {
			ex, _ := w.Exercise(kind)
			row = append(row, fmt.Sprintf("%d", planner.ExerciseTarget(ex)))
		}
		row = append(row, dayMarker(w, completed[w.Date], today))
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

func dayMarker(w domain.WorkoutDay, done bool, today domain.Date) string {
	switch {
	case done:
		return StyleGreen.Render("✔")
	case w.Date == today:
		return StyleHeader.Render("← today")
	case w.IsMaxCheck:
		return StylePurple.Render("max")
	case w.Date.Before(today):
		return StyleRed.Render("missed")
	default:
		return ""
	}
}
