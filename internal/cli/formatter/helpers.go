package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDay describes d relative to today: "Today", "Tomorrow", "In 3d", "2d ago".
func RelativeDay(d, today domain.Date) string {
	days := d.DaysSince(today)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0:
		return fmt.Sprintf("In %dw", days/7)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	default:
		return fmt.Sprintf("%dw ago", -days/7)
	}
}

// HumanDate renders a date as "Mon, Jan 8".
func HumanDate(d domain.Date) string {
	return fmt.Sprintf("%s, %s %d", d.Weekday().String()[:3], d.Month.String()[:3], d.Day)
}

var exerciseLabels = map[domain.ExerciseKind]string{
	domain.ExercisePullups: "Pull-ups",
	domain.ExerciseSquats:  "Squats",
	domain.ExerciseAbs:     "Abs",
	domain.ExercisePushups: "Push-ups",
}

// ExerciseLabel returns the display name of an exercise kind.
func ExerciseLabel(kind domain.ExerciseKind) string {
	if label, ok := exerciseLabels[kind]; ok {
		return label
	}
	return string(kind)
}

var iconGlyphs = map[domain.AchievementIcon]string{
	domain.IconDumbbell:   "🏋",
	domain.IconTrophy:     "🏆",
	domain.IconFlame:      "🔥",
	domain.IconTarget:     "🎯",
	domain.IconCalendar:   "📅",
	domain.IconStar:       "⭐",
	domain.IconZap:        "⚡",
	domain.IconMedal:      "🏅",
	domain.IconTrendingUp: "📈",
}

// IconGlyph maps an achievement icon to a terminal glyph.
func IconGlyph(icon domain.AchievementIcon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

// FormatReps joins per-set reps as "5 · 5 · 4 · 4".
func FormatReps(reps []int) string {
	parts := make([]string, len(reps))
	for i, r := range reps {
		parts[i] = fmt.Sprintf("%d", r)
	}
	return strings.Join(parts, " · ")
}

// FormatRest renders rest seconds as "90s", "2m" or "2m30s".
func FormatRest(seconds int) string {
	if seconds < 120 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds%60 == 0 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}
