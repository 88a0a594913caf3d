package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus_NotInitialized(t *testing.T) {
	progress, profiles, _ := setupRepos(t)
	svc := NewStatusService(progress, profiles, domain.DefaultMaxes)

	_, err := svc.GetStatus(context.Background(), planStart)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestGetStatus_FreshPlan(t *testing.T) {
	progress, profiles, uow := setupRepos(t)
	initialized(t, progress, profiles, uow)
	svc := NewStatusService(progress, profiles, domain.DefaultMaxes)

	view, err := svc.GetStatus(context.Background(), planStart)
	require.NoError(t, err)

	assert.Equal(t, 1, view.XP.Level)
	assert.Equal(t, 100, view.XP.Required)
	assert.Zero(t, view.Plan.Completed)
	assert.Equal(t, 90, view.Plan.Total)
	assert.Equal(t, 1, view.Week.Total)
	assert.Equal(t, 9, view.Achievements.Total)
	require.NotNil(t, view.TodayWorkout)
	assert.Equal(t, "w1", view.TodayWorkout.ID)
	assert.False(t, view.TodayDone)
	assert.Equal(t, 1, view.PlanWeek)
	assert.Equal(t, 1, view.PlanDay)
}

func TestGetStatus_AfterWorkouts(t *testing.T) {
	progress, profiles, uow := setupRepos(t)
	progressSvc := initialized(t, progress, profiles, uow)
	complete(t, progressSvc, planStart, workoutSets()...)
	obs := &recordingObserver{}
	svc := NewStatusService(progress, profiles, domain.DefaultMaxes, obs)

	wednesday := planStart.AddDays(2)
	view, err := svc.GetStatus(context.Background(), wednesday)
	require.NoError(t, err)

	assert.Equal(t, 149, view.TotalXP)
	assert.Equal(t, 2, view.XP.Level)
	assert.Equal(t, 49, view.XP.Earned)
	assert.Equal(t, 120, view.XP.Required)
	assert.Equal(t, 1, view.StreakDays)
	assert.Equal(t, 1, view.WorkoutCount)
	assert.Equal(t, 18, view.TotalReps[domain.ExercisePullups])
	assert.Equal(t, 40, view.TotalReps[domain.ExerciseSquats])
	assert.Zero(t, view.TotalReps[domain.ExerciseAbs])

	assert.Equal(t, 1, view.Plan.Completed)
	assert.Equal(t, 1, view.Week.Completed)
	assert.Equal(t, 2, view.Week.Total, "Monday and Wednesday so far")
	assert.Equal(t, 50, view.Week.Percent())
	assert.Equal(t, 1, view.Achievements.Completed)

	require.NotNil(t, view.TodayWorkout)
	assert.Equal(t, "w2", view.TodayWorkout.ID)
	assert.False(t, view.TodayDone)
	require.NotNil(t, view.NextWorkout)
	assert.Equal(t, "w3", view.NextWorkout.ID)
	assert.Equal(t, 2, view.PlanDay)

	assert.Equal(t, []string{"status"}, obs.names())
}

func TestGetStatus_RestDayAndPlanEnd(t *testing.T) {
	progress, profiles, uow := setupRepos(t)
	initialized(t, progress, profiles, uow)
	svc := NewStatusService(progress, profiles, domain.DefaultMaxes)
	ctx := context.Background()

	view, err := svc.GetStatus(ctx, planStart.AddDays(1))
	require.NoError(t, err)
	assert.Nil(t, view.TodayWorkout)
	require.NotNil(t, view.NextWorkout)
	assert.Equal(t, "w2", view.NextWorkout.ID)

	view, err = svc.GetStatus(ctx, planStart.AddDays(365))
	require.NoError(t, err)
	assert.Nil(t, view.TodayWorkout)
	assert.Nil(t, view.NextWorkout)
	assert.Equal(t, 90, view.PlanDay)
}

func TestGetStatus_TodayDone(t *testing.T) {
	progress, profiles, uow := setupRepos(t)
	progressSvc := initialized(t, progress, profiles, uow)
	complete(t, progressSvc, planStart, testutil.Sets(domain.ExerciseAbs, 10)...)
	svc := NewStatusService(progress, profiles, domain.DefaultMaxes)

	view, err := svc.GetStatus(context.Background(), planStart)
	require.NoError(t, err)
	assert.True(t, view.TodayDone)
}
