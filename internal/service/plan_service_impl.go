package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/planner"
	"github.com/alexanderramin/fittrack/internal/repository"
)

type planService struct {
	progress repository.ProgressRepo
	profiles repository.ProfileRepo
	defaults domain.UserMaxes
}

func NewPlanService(progress repository.ProgressRepo, profiles repository.ProfileRepo, defaults domain.UserMaxes) PlanService {
	return &planService{progress: progress, profiles: profiles, defaults: defaults}
}

func (s *planService) Profile(ctx context.Context) (*domain.TrainingProfile, error) {
	return loadProfile(ctx, s.profiles)
}

func (s *planService) Plan(ctx context.Context) ([]domain.WorkoutDay, error) {
	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	p, err := loadProgress(ctx, s.progress, s.defaults)
	if err != nil {
		return nil, err
	}
	return planFor(profile, p), nil
}

func (s *planService) WorkoutFor(ctx context.Context, date domain.Date) (*domain.WorkoutDay, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}
	w, ok := planner.FindWorkoutByDate(plan, date)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoWorkoutOnDate, date)
	}
	return &w, nil
}

// Next returns the first planned workout strictly after from.
func (s *planService) Next(ctx context.Context, from domain.Date) (*domain.WorkoutDay, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}
	date, ok := planner.NextWorkoutDate(plan, from)
	if !ok {
		return nil, fmt.Errorf("%w after %s", ErrNoUpcomingWorkout, from)
	}
	w, _ := planner.FindWorkoutByDate(plan, date)
	return &w, nil
}
