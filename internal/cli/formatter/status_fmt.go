package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/planner"
)

const ringWidth = 20

// FormatStatus renders the dashboard: level, rings, stats and today's session.
func FormatStatus(v *app.StatusView) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Level %d", v.XP.Level)))
	b.WriteString("\n")
	b.WriteString(RenderXPBar(v.XP, ringWidth))
	b.WriteString(Dim(fmt.Sprintf("  (%d XP total)", v.TotalXP)))
	b.WriteString("\n\n")

	b.WriteString(ringLine("Plan 90d", v.Plan))
	b.WriteString(ringLine("This week", v.Week))
	b.WriteString(ringLine("Achievements", v.Achievements))
	b.WriteString("\n")

	streak := fmt.Sprintf("%d day", v.StreakDays)
	if v.StreakDays != 1 {
		streak += "s"
	}
	stats := []string{
		fmt.Sprintf("Workouts %s", Bold(fmt.Sprintf("%d", v.WorkoutCount))),
		fmt.Sprintf("Streak %s", StyleYellow.Render(streak)),
	}
	if v.PlanDay > 0 {
		stats = append(stats, fmt.Sprintf("Plan %s", Bold(fmt.Sprintf("week %d · day %d", v.PlanWeek, v.PlanDay))))
	} else {
		stats = append(stats, Dim("Plan starts "+HumanDate(v.PlanStartDate)))
	}
	b.WriteString(strings.Join(stats, Dim("  │  ")))
	b.WriteString("\n")

	reps := make([]string, 0, len(domain.ExerciseKinds))
	for _, kind := range domain.ExerciseKinds {
		reps = append(reps, fmt.Sprintf("%s %d", ExerciseLabel(kind), v.TotalReps[kind]))
	}
	b.WriteString(Dim("Total reps: " + strings.Join(reps, ", ")))
	b.WriteString("\n\n")

	b.WriteString(Header("Today"))
	b.WriteString("\n")
	switch {
	case v.TodayWorkout != nil:
		b.WriteString(FormatWorkout(*v.TodayWorkout, v.Today, v.TodayDone))
	default:
		b.WriteString(Dim("Rest day. Training days are Monday, Wednesday and Friday."))
		b.WriteString("\n")
	}

	if v.NextWorkout != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Next: %s %s\n",
			Bold(HumanDate(v.NextWorkout.Date)),
			Dim(fmt.Sprintf("(%s, day %d, %s)", RelativeDay(v.NextWorkout.Date, v.Today), v.NextWorkout.DayNumber, v.NextWorkout.Focus))))
	} else if v.TodayWorkout == nil {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Render("Plan finished. Run `fittrack init` to start a new cycle."))
		b.WriteString("\n")
	}

	return b.String()
}

func ringLine(label string, c planner.PlanCompletion) string {
	return fmt.Sprintf("%-13s %s %s\n", label, RenderProgress(c.Fraction(), ringWidth), Dim(fmt.Sprintf("%d/%d", c.Completed, c.Total)))
}
