package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/domain"
)

// FormatCompletion summarizes a logged workout: XP, level change and unlocks.
func FormatCompletion(r *app.CompletionResult) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render(fmt.Sprintf("✔ Logged day %d (%s)", r.Workout.DayNumber, HumanDate(r.Workout.Date))))
	b.WriteString("\n")

	totals := make(map[domain.ExerciseKind]int)
	for _, s := range r.Recorded.Sets {
		totals[s.Kind] += s.Reps
	}
	parts := make([]string, 0, len(totals))
	for _, kind := range domain.ExerciseKinds {
		if n, ok := totals[kind]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", ExerciseLabel(kind), n))
		}
	}
	b.WriteString(Dim(strings.Join(parts, ", ")))
	b.WriteString("\n")
	if r.DroppedSets > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d empty set(s) skipped", r.DroppedSets)))
		b.WriteString("\n")
	}

	b.WriteString(StylePurple.Render(fmt.Sprintf("+%d XP", r.XPEarned)))
	if r.BonusXP > 0 {
		b.WriteString(StylePurple.Render(fmt.Sprintf(" +%d bonus", r.BonusXP)))
	}
	b.WriteString("\n")

	if r.LeveledUp() {
		b.WriteString(StyleHeader.Render(fmt.Sprintf("▲ Level up! %d → %d", r.LevelBefore, r.LevelAfter)))
		b.WriteString("\n")
	}
	for _, a := range r.Unlocked {
		b.WriteString(fmt.Sprintf("%s Achievement unlocked: %s\n", IconGlyph(a.Icon), StyleYellow.Render(a.Name)))
	}
	if r.Progress.StreakDays > 1 {
		b.WriteString(Dim(fmt.Sprintf("Streak: %d days", r.Progress.StreakDays)))
		b.WriteString("\n")
	}
	return b.String()
}
