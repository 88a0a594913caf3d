package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/planner"
	"github.com/alexanderramin/fittrack/internal/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

var (
	planStart = domain.MustParseDate("2024-01-01")
	maxes     = domain.UserMaxes{Pullups: 8, Squats: 40, Abs: 30, Pushups: 25}
)

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Mon, Jan 8", HumanDate(domain.MustParseDate("2024-01-08")))
}

func TestRelativeDay(t *testing.T) {
	today := domain.MustParseDate("2024-01-10")
	assert.Equal(t, "Today", RelativeDay(today, today))
	assert.Equal(t, "Tomorrow", RelativeDay(today.AddDays(1), today))
	assert.Equal(t, "Yesterday", RelativeDay(today.AddDays(-1), today))
	assert.Equal(t, "In 5d", RelativeDay(today.AddDays(5), today))
	assert.Equal(t, "3d ago", RelativeDay(today.AddDays(-3), today))
	assert.Equal(t, "In 3w", RelativeDay(today.AddDays(21), today))
}

func TestFormatRest(t *testing.T) {
	assert.Equal(t, "45s", FormatRest(45))
	assert.Equal(t, "90s", FormatRest(90))
	assert.Equal(t, "2m", FormatRest(120))
	assert.Equal(t, "3m", FormatRest(180))
	assert.Equal(t, "2m30s", FormatRest(150))
}

func TestFormatReps(t *testing.T) {
	assert.Equal(t, "5 · 5 · 4", FormatReps([]int{5, 5, 4}))
	assert.Equal(t, "", FormatReps(nil))
}

func TestIconGlyph_Fallback(t *testing.T) {
	assert.Equal(t, "🔥", IconGlyph(domain.IconFlame))
	assert.Equal(t, "•", IconGlyph("unknown"))
}

func TestRenderProgress_Clamps(t *testing.T) {
	out := stripANSI(RenderProgress(1.5, 10))
	assert.Contains(t, out, "100%")
	out = stripANSI(RenderProgress(-1, 10))
	assert.Contains(t, out, "0%")
}

func TestRenderXPBar(t *testing.T) {
	out := stripANSI(RenderXPBar(progression.XPProgress{Level: 2, Earned: 49, Required: 120, Fraction: 49.0 / 120}, 10))
	assert.Contains(t, out, "49 / 120 XP")
}

func TestFormatWorkout(t *testing.T) {
	plan := planner.GeneratePlan(planStart, maxes)
	day := plan[0]

	out := stripANSI(FormatWorkout(day, planStart, false))
	assert.Contains(t, out, "Day 1 · Week 1")
	assert.Contains(t, out, "STRENGTH")
	assert.Contains(t, out, "Pull-ups")
	assert.Contains(t, out, "Push-ups")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Target:")
	assert.NotContains(t, out, "Completed")

	done := stripANSI(FormatWorkout(day, planStart, true))
	assert.Contains(t, done, "Completed")
}

func TestFormatWorkout_MaxCheckBadge(t *testing.T) {
	plan := planner.GeneratePlan(planStart, maxes)
	day := plan[13]
	require.True(t, day.IsMaxCheck)

	out := stripANSI(FormatWorkout(day, planStart, false))
	assert.Contains(t, out, "MAX CHECK")
}

func TestFormatPlan(t *testing.T) {
	plan := planner.GeneratePlan(planStart, maxes)
	week := planner.Week(plan, 1)
	today := domain.MustParseDate("2024-01-03")

	out := stripANSI(FormatPlan(week, map[domain.Date]bool{planStart: true}, today))
	assert.Contains(t, out, "PULL-UPS")
	assert.Contains(t, out, "Mon, Jan 1")
	assert.Contains(t, out, "Fri, Jan 5")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "← today")
}

func TestFormatPlan_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatPlan(nil, nil, planStart)), "No training days")
}

func TestFormatStatus_RestDay(t *testing.T) {
	plan := planner.GeneratePlan(planStart, maxes)
	next := plan[1]
	v := &app.StatusView{
		Today:         domain.MustParseDate("2024-01-02"),
		TotalXP:       149,
		XP:            progression.XPProgressWithinLevel(149),
		StreakDays:    1,
		WorkoutCount:  1,
		TotalReps:     map[domain.ExerciseKind]int{domain.ExerciseSquats: 40},
		PlanStartDate: planStart,
		PlanWeek:      1,
		PlanDay:       1,
		Plan:          planner.PlanCompletion{Completed: 1, Total: 90},
		Week:          planner.PlanCompletion{Completed: 1, Total: 1},
		Achievements:  planner.PlanCompletion{Completed: 1, Total: 9},
		NextWorkout:   &next,
	}

	out := stripANSI(FormatStatus(v))
	assert.Contains(t, out, "LEVEL 2")
	assert.Contains(t, out, "149 XP total")
	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "week 1 · day 1")
	assert.Contains(t, out, "Squats 40")
	assert.Contains(t, out, "Rest day")
	assert.Contains(t, out, "Next: Wed, Jan 3")
	assert.Contains(t, out, "1/90")
}

func TestFormatStatus_BeforePlanStart(t *testing.T) {
	plan := planner.GeneratePlan(planStart, maxes)
	v := &app.StatusView{
		Today:         domain.MustParseDate("2023-12-30"),
		XP:            progression.XPProgressWithinLevel(0),
		PlanStartDate: planStart,
		TotalReps:     map[domain.ExerciseKind]int{},
		NextWorkout:   &plan[0],
	}
	out := stripANSI(FormatStatus(v))
	assert.Contains(t, out, "Plan starts Mon, Jan 1")
	assert.Contains(t, out, "0 days")
}

func TestFormatStatus_PlanFinished(t *testing.T) {
	v := &app.StatusView{
		Today:     domain.MustParseDate("2024-12-01"),
		XP:        progression.XPProgressWithinLevel(0),
		TotalReps: map[domain.ExerciseKind]int{},
		PlanDay:   90,
		PlanWeek:  30,
	}
	assert.Contains(t, stripANSI(FormatStatus(v)), "Plan finished")
}

func TestFormatAchievements(t *testing.T) {
	catalog := progression.Catalog()
	views := make([]app.AchievementView, len(catalog))
	for i, a := range catalog {
		views[i] = app.AchievementView{Achievement: a, Unlocked: a.ID == "first-workout"}
	}

	out := stripANSI(FormatAchievements(views))
	assert.Contains(t, out, "ACHIEVEMENTS 1/9")
	assert.Contains(t, out, "+80 XP")
	assert.Contains(t, out, "🔒")
}

func TestFormatCompletion(t *testing.T) {
	plan := planner.GeneratePlan(planStart, maxes)
	first, ok := progression.FindAchievement("first-workout")
	require.True(t, ok)
	at := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)

	r := &app.CompletionResult{
		Workout: plan[0],
		Recorded: domain.CompletedWorkout{
			WorkoutID: "w1",
			Date:      planStart,
			Sets: []domain.CompletedSet{
				{Kind: domain.ExercisePullups, Reps: 5, CompletedAt: at},
				{Kind: domain.ExercisePullups, Reps: 4, CompletedAt: at},
				{Kind: domain.ExerciseSquats, Reps: 20, CompletedAt: at},
			},
		},
		XPEarned:    124,
		BonusXP:     25,
		LevelBefore: 1,
		LevelAfter:  2,
		Unlocked:    []progression.Achievement{first},
		DroppedSets: 1,
	}

	out := stripANSI(FormatCompletion(r))
	assert.Contains(t, out, "Logged day 1")
	assert.Contains(t, out, "Pull-ups 9, Squats 20")
	assert.Contains(t, out, "1 empty set(s) skipped")
	assert.Contains(t, out, "+124 XP +25 bonus")
	assert.Contains(t, out, "Level up! 1 → 2")
	assert.Contains(t, out, first.Name)
}

func TestFormatMonth(t *testing.T) {
	v := &app.MonthView{
		Year:    2024,
		Month:   time.February,
		Leading: 3,
		Days: []app.DayCell{
			{Date: domain.MustParseDate("2024-02-01")},
			{Date: domain.MustParseDate("2024-02-02"), Planned: true, Completed: true},
			{Date: domain.MustParseDate("2024-02-03"), Today: true},
		},
		Completed: 1,
		Planned:   1,
	}

	out := stripANSI(FormatMonth(v))
	assert.Contains(t, out, "FEBRUARY 2024")
	assert.Contains(t, out, " Mo  Tu  We  Th  Fr  Sa  Su")
	assert.Contains(t, out, "[ 3]")
	assert.Contains(t, out, "1/1 this month")
}
