package progression

import (
	"slices"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// Achievement is a catalog entry: a one-time XP reward granted the first time
// Check holds for the user's progress.
type Achievement struct {
	ID          domain.AchievementID
	Name        string
	Description string
	Icon        domain.AchievementIcon
	XPReward    int
	Check       func(p domain.UserProgress) bool
}

var catalog = []Achievement{
	{
		ID:          "first-hundred-squats",
		Name:        "First hundred squats",
		Description: "Complete 100 squats across all workouts",
		Icon:        domain.IconDumbbell,
		XPReward:    50,
		Check:       repsAtLeast(domain.ExerciseSquats, 100),
	},
	{
		ID:          "king-of-the-bar",
		Name:        "King of the bar",
		Description: "Complete 50 pull-ups in total",
		Icon:        domain.IconTrophy,
		XPReward:    80,
		Check:       repsAtLeast(domain.ExercisePullups, 50),
	},
	{
		ID:          "push-master",
		Name:        "Push-up master",
		Description: "Complete 100 push-ups in total",
		Icon:        domain.IconFlame,
		XPReward:    50,
		Check:       repsAtLeast(domain.ExercisePushups, 100),
	},
	{
		ID:          "core-100",
		Name:        "Core hundred",
		Description: "Complete 100 ab reps in total",
		Icon:        domain.IconTarget,
		XPReward:    50,
		Check:       repsAtLeast(domain.ExerciseAbs, 100),
	},
	{
		ID:          "week-streak",
		Name:        "No-skip week",
		Description: "Keep a 7-day streak",
		Icon:        domain.IconCalendar,
		XPReward:    100,
		Check:       func(p domain.UserProgress) bool { return p.StreakDays >= 7 },
	},
	{
		ID:          "thirty-days",
		Name:        "Thirty without a miss",
		Description: "Keep a 30-day streak",
		Icon:        domain.IconStar,
		XPReward:    300,
		Check:       func(p domain.UserProgress) bool { return p.StreakDays >= 30 },
	},
	{
		ID:          "first-workout",
		Name:        "First workout",
		Description: "Finish your first workout",
		Icon:        domain.IconZap,
		XPReward:    25,
		Check:       func(p domain.UserProgress) bool { return len(p.CompletedWorkouts) >= 1 },
	},
	{
		ID:          "ten-workouts",
		Name:        "Ten workouts",
		Description: "Train on 10 different days",
		Icon:        domain.IconMedal,
		XPReward:    75,
		Check:       func(p domain.UserProgress) bool { return DistinctTrainingDays(p.CompletedWorkouts) >= 10 },
	},
	{
		ID:          "level-five",
		Name:        "Level 5",
		Description: "Reach level 5",
		Icon:        domain.IconTrendingUp,
		XPReward:    0,
		Check:       func(p domain.UserProgress) bool { return p.Level >= 5 },
	},
}

// Catalog returns the achievement catalog in display order.
func Catalog() []Achievement {
	return slices.Clone(catalog)
}

// FindAchievement looks up a catalog entry by id.
func FindAchievement(id domain.AchievementID) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

func repsAtLeast(kind domain.ExerciseKind, n int) func(domain.UserProgress) bool {
	return func(p domain.UserProgress) bool {
		return TotalRepsOf(kind, p.CompletedWorkouts) >= n
	}
}

// TotalRepsOf sums the reps of kind across every recorded set.
func TotalRepsOf(kind domain.ExerciseKind, workouts []domain.CompletedWorkout) int {
	total := 0
	for _, w := range workouts {
		for _, s := range w.Sets {
			if s.Kind == kind {
				total += s.Reps
			}
		}
	}
	return total
}

// DistinctTrainingDays counts unique workout dates.
func DistinctTrainingDays(workouts []domain.CompletedWorkout) int {
	seen := make(map[domain.Date]struct{}, len(workouts))
	for _, w := range workouts {
		seen[w.Date] = struct{}{}
	}
	return len(seen)
}

// Satisfied returns the ids of every catalog entry whose check holds for p,
// in catalog order.
func Satisfied(p domain.UserProgress) []domain.AchievementID {
	ids := make([]domain.AchievementID, 0, len(catalog))
	for _, a := range catalog {
		if a.Check(p) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// UpdateAchievements sets the unlocked list to exactly the satisfied catalog
// entries and grants the reward of each entry not previously unlocked.
//
// Evaluation repeats until stable: a reward can lift the level, which can in
// turn satisfy a level-based entry. A second call on the result is a no-op.
func UpdateAchievements(p domain.UserProgress) domain.UserProgress {
	out := p.Clone()
	for {
		ids := Satisfied(out)
		bonus := 0
		gained := false
		for _, id := range ids {
			if out.HasUnlocked(id) {
				continue
			}
			gained = true
			if a, ok := FindAchievement(id); ok {
				bonus += a.XPReward
			}
		}
		out.UnlockedAchievements = ids
		if !gained {
			return out
		}
		out.TotalXP += bonus
		out.Level = LevelForXP(out.TotalXP)
	}
}

// NewlyUnlocked returns the catalog entries unlocked in after but not in before,
// in catalog order.
func NewlyUnlocked(before, after domain.UserProgress) []Achievement {
	var gained []Achievement
	for _, a := range catalog {
		if after.HasUnlocked(a.ID) && !before.HasUnlocked(a.ID) {
			gained = append(gained, a)
		}
	}
	return gained
}
