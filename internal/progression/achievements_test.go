package progression

import (
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list ...string) []domain.AchievementID {
	out := make([]domain.AchievementID, len(list))
	for i, s := range list {
		out[i] = domain.AchievementID(s)
	}
	return out
}

func TestCatalog_FixedOrderAndRewards(t *testing.T) {
	c := Catalog()
	require.Len(t, c, 9)

	got := make([]domain.AchievementID, len(c))
	rewards := make([]int, len(c))
	for i, a := range c {
		got[i] = a.ID
		rewards[i] = a.XPReward
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Icon)
		assert.NotNil(t, a.Check)
	}
	assert.Equal(t, ids("first-hundred-squats", "king-of-the-bar", "push-master", "core-100",
		"week-streak", "thirty-days", "first-workout", "ten-workouts", "level-five"), got)
	assert.Equal(t, []int{50, 80, 50, 50, 100, 300, 25, 75, 0}, rewards)
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].XPReward = 9999
	a, ok := FindAchievement("first-hundred-squats")
	require.True(t, ok)
	assert.Equal(t, 50, a.XPReward)
}

func TestUpdateAchievements_FirstWorkoutAddsBonus(t *testing.T) {
	p := domain.NewUserProgress(domain.DefaultMaxes)
	p = RecordCompletedWorkout(p, "w1", domain.MustParseDate("2024-01-01"),
		[]domain.CompletedSet{set(domain.ExercisePushups, 10)}, testNow)
	require.Equal(t, 55, p.TotalXP)

	next := UpdateAchievements(p)

	assert.Equal(t, ids("first-workout"), next.UnlockedAchievements)
	assert.Equal(t, 55+25, next.TotalXP)
	assert.Equal(t, 1, next.Level)
}

func TestUpdateAchievements_Idempotent(t *testing.T) {
	p := domain.NewUserProgress(domain.DefaultMaxes)
	p = RecordCompletedWorkout(p, "w1", domain.MustParseDate("2024-01-01"),
		[]domain.CompletedSet{set(domain.ExerciseSquats, 120), set(domain.ExercisePullups, 60)}, testNow)

	once := UpdateAchievements(p)
	twice := UpdateAchievements(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, ids("first-hundred-squats", "king-of-the-bar", "first-workout"), once.UnlockedAchievements)
	// 50 + 60 + 180 = 290 workout XP, plus 50 + 80 + 25 bonus
	assert.Equal(t, 290+155, once.TotalXP)
}

func TestUpdateAchievements_BonusCrossingLevelFiveUnlocksInSameCall(t *testing.T) {
	p := domain.NewUserProgress(domain.DefaultMaxes)
	p.TotalXP = 470
	p.Level = LevelForXP(470)
	require.Equal(t, 4, p.Level)

	p = RecordCompletedWorkout(p, "w1", domain.MustParseDate("2024-01-01"),
		[]domain.CompletedSet{set(domain.ExerciseAbs, 1)}, testNow)
	require.Equal(t, 521, p.TotalXP)
	require.Equal(t, 4, p.Level)

	next := UpdateAchievements(p)

	assert.Equal(t, 546, next.TotalXP)
	assert.Equal(t, 5, next.Level)
	assert.Equal(t, ids("first-workout", "level-five"), next.UnlockedAchievements)
	assert.Equal(t, next, UpdateAchievements(next))
}

func TestUpdateAchievements_NothingSatisfied(t *testing.T) {
	p := domain.NewUserProgress(domain.DefaultMaxes)
	next := UpdateAchievements(p)
	assert.Equal(t, p, next)
}

func TestUpdateAchievements_DropsStaleEntriesWithoutRefund(t *testing.T) {
	p := domain.NewUserProgress(domain.DefaultMaxes)
	p.TotalXP = 300
	p.Level = LevelForXP(300)
	p.UnlockedAchievements = ids("week-streak")

	next := UpdateAchievements(p)
	assert.Empty(t, next.UnlockedAchievements)
	assert.Equal(t, 300, next.TotalXP)
}

func TestUpdateAchievements_StreakAndDistinctDays(t *testing.T) {
	p := domain.NewUserProgress(domain.DefaultMaxes)
	start := domain.MustParseDate("2024-01-01")
	for i := 0; i < 10; i++ {
		p = RecordCompletedWorkout(p, "w", start.AddDays(i),
			[]domain.CompletedSet{set(domain.ExerciseAbs, 1)}, testNow)
		p = UpdateAchievements(p)
	}

	assert.Equal(t, 10, p.StreakDays)
	assert.True(t, p.HasUnlocked("week-streak"))
	assert.True(t, p.HasUnlocked("ten-workouts"))
	assert.False(t, p.HasUnlocked("thirty-days"))
}

func TestDistinctTrainingDays_IgnoresDuplicates(t *testing.T) {
	d := domain.MustParseDate("2024-01-01")
	workouts := []domain.CompletedWorkout{{Date: d}, {Date: d}, {Date: d.AddDays(1)}}
	assert.Equal(t, 2, DistinctTrainingDays(workouts))
}

func TestTotalRepsOf_SumsAcrossWorkouts(t *testing.T) {
	workouts := []domain.CompletedWorkout{
		{Sets: []domain.CompletedSet{set(domain.ExercisePullups, 5), set(domain.ExerciseSquats, 20)}},
		{Sets: []domain.CompletedSet{set(domain.ExercisePullups, 6)}},
	}
	assert.Equal(t, 11, TotalRepsOf(domain.ExercisePullups, workouts))
	assert.Equal(t, 20, TotalRepsOf(domain.ExerciseSquats, workouts))
	assert.Equal(t, 0, TotalRepsOf(domain.ExerciseAbs, workouts))
}

func TestNewlyUnlocked(t *testing.T) {
	before := domain.NewUserProgress(domain.DefaultMaxes)
	after := before.Clone()
	after.UnlockedAchievements = ids("king-of-the-bar", "first-workout")

	gained := NewlyUnlocked(before, after)
	require.Len(t, gained, 2)
	assert.Equal(t, domain.AchievementID("king-of-the-bar"), gained[0].ID)
	assert.Equal(t, domain.AchievementID("first-workout"), gained[1].ID)
	assert.Empty(t, NewlyUnlocked(after, after))
}
