package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/planner"
	"github.com/alexanderramin/fittrack/internal/progression"
	"github.com/alexanderramin/fittrack/internal/repository"
)

type statusService struct {
	progress repository.ProgressRepo
	profiles repository.ProfileRepo
	defaults domain.UserMaxes
	observer UseCaseObserver
}

func NewStatusService(
	progress repository.ProgressRepo,
	profiles repository.ProfileRepo,
	defaults domain.UserMaxes,
	observers ...UseCaseObserver,
) StatusService {
	return &statusService{
		progress: progress,
		profiles: profiles,
		defaults: defaults,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *statusService) GetStatus(ctx context.Context, today domain.Date) (view *app.StatusView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"today": today.String()}
	defer func() { reportUseCase(ctx, s.observer, "status", startedAt, fields, err) }()

	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	p, err := loadProgress(ctx, s.progress, s.defaults)
	if err != nil {
		return nil, err
	}

	plan := planFor(profile, p)
	completed := p.CompletedDates()

	view = &app.StatusView{
		Today:           today,
		Maxes:           p.Maxes,
		TotalXP:         p.TotalXP,
		XP:              progression.XPProgressWithinLevel(p.TotalXP),
		StreakDays:      p.StreakDays,
		LastWorkoutDate: p.LastWorkoutDate,
		WorkoutCount:    len(p.CompletedWorkouts),
		TotalReps:       make(map[domain.ExerciseKind]int, len(domain.ExerciseKinds)),
		PlanStartDate:   profile.PlanStartDate,
		Plan:            planner.Completion(plan, completed),
		Week:            planner.WeekCompletion(plan, completed, today),
		Achievements: planner.PlanCompletion{
			Completed: len(p.UnlockedAchievements),
			Total:     len(progression.Catalog()),
		},
	}
	view.PlanWeek, view.PlanDay = planner.Progress(plan, today)
	for _, kind := range domain.ExerciseKinds {
		view.TotalReps[kind] = progression.TotalRepsOf(kind, p.CompletedWorkouts)
	}

	if w, ok := planner.FindWorkoutByDate(plan, today); ok {
		view.TodayWorkout = &w
		view.TodayDone = completed[today]
	}
	if next, ok := planner.NextWorkoutDate(plan, today); ok {
		w, _ := planner.FindWorkoutByDate(plan, next)
		view.NextWorkout = &w
	}

	fields["level"] = view.XP.Level
	fields["plan_pct"] = view.Plan.Percent()
	return view, nil
}
