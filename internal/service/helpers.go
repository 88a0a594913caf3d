package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/planner"
	"github.com/alexanderramin/fittrack/internal/repository"
)

// Clock returns the current time in the user's zone.
type Clock func() time.Time

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// loadProgress returns stored progress, or a fresh value seeded with
// defaults when nothing has been saved yet.
func loadProgress(ctx context.Context, repo repository.ProgressRepo, defaults domain.UserMaxes) (*domain.UserProgress, error) {
	p, err := repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		fresh := domain.NewUserProgress(defaults)
		return &fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	return p, nil
}

func loadProfile(ctx context.Context, repo repository.ProfileRepo) (*domain.TrainingProfile, error) {
	profile, err := repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("loading training profile: %w", err)
	}
	return profile, nil
}

// planFor regenerates the plan from the profile's start date and the current maxes.
func planFor(profile *domain.TrainingProfile, p *domain.UserProgress) []domain.WorkoutDay {
	return planner.GeneratePlan(profile.PlanStartDate, p.Maxes)
}

func validateMaxes(m domain.UserMaxes) error {
	if m.Pullups < 0 || m.Squats < 0 || m.Abs < 0 || m.Pushups < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidMaxes, m)
	}
	return nil
}
