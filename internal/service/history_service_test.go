package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryMonth_FirstMonthOfPlan(t *testing.T) {
	progress, profiles, uow := setupRepos(t)
	progressSvc := initialized(t, progress, profiles, uow)
	complete(t, progressSvc, planStart, workoutSets()...)
	svc := NewHistoryService(progress, profiles, domain.DefaultMaxes, clockOn(planStart.AddDays(2)))

	view, err := svc.Month(context.Background(), 2024, time.January)
	require.NoError(t, err)

	assert.Equal(t, 0, view.Leading, "January 2024 starts on a Monday")
	require.Len(t, view.Days, 31)
	// Mondays 1..29, Wednesdays 3..31, Fridays 5..26
	assert.Equal(t, 14, view.Planned)
	assert.Equal(t, 1, view.Completed)

	assert.True(t, view.Days[0].Planned)
	assert.True(t, view.Days[0].Completed)
	assert.Equal(t, "w1", view.Days[0].WorkoutID)
	assert.False(t, view.Days[1].Planned)
	assert.Empty(t, view.Days[1].WorkoutID)
	assert.True(t, view.Days[2].Today)
	assert.False(t, view.Days[0].Today)
}

func TestHistoryMonth_LeadingBlanks(t *testing.T) {
	progress, profiles, uow := setupRepos(t)
	initialized(t, progress, profiles, uow)
	svc := NewHistoryService(progress, profiles, domain.DefaultMaxes, clockOn(planStart))

	view, err := svc.Month(context.Background(), 2024, time.February)
	require.NoError(t, err)

	assert.Equal(t, 3, view.Leading, "February 2024 starts on a Thursday")
	assert.Len(t, view.Days, 29)
	assert.Zero(t, view.Completed)
}

func TestHistoryMonth_OutsidePlan(t *testing.T) {
	progress, profiles, uow := setupRepos(t)
	initialized(t, progress, profiles, uow)
	svc := NewHistoryService(progress, profiles, domain.DefaultMaxes, clockOn(planStart))

	view, err := svc.Month(context.Background(), 2023, time.December)
	require.NoError(t, err)
	assert.Zero(t, view.Planned)
	assert.Len(t, view.Days, 31)
}

func TestHistoryMonth_InvalidMonth(t *testing.T) {
	progress, profiles, uow := setupRepos(t)
	initialized(t, progress, profiles, uow)
	svc := NewHistoryService(progress, profiles, domain.DefaultMaxes, nil)

	_, err := svc.Month(context.Background(), 2024, 13)
	require.Error(t, err)
}

func TestHistoryMonth_NotInitialized(t *testing.T) {
	progress, profiles, _ := setupRepos(t)
	svc := NewHistoryService(progress, profiles, domain.DefaultMaxes, nil)

	_, err := svc.Month(context.Background(), 2024, time.January)
	assert.ErrorIs(t, err, ErrNotInitialized)
}
