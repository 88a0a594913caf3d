package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/importer"
	"github.com/alexanderramin/fittrack/internal/planner"
	"github.com/alexanderramin/fittrack/internal/progression"
	"github.com/alexanderramin/fittrack/internal/repository"
)

type progressService struct {
	progress repository.ProgressRepo
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	defaults domain.UserMaxes
	now      Clock
	observer UseCaseObserver
}

func NewProgressService(
	progress repository.ProgressRepo,
	profiles repository.ProfileRepo,
	uow db.UnitOfWork,
	defaults domain.UserMaxes,
	now Clock,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		progress: progress,
		profiles: profiles,
		uow:      uow,
		defaults: defaults,
		now:      clockOrSystem(now),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Load(ctx context.Context) (*domain.UserProgress, error) {
	return loadProgress(ctx, s.progress, s.defaults)
}

func (s *progressService) Initialize(ctx context.Context, maxes domain.UserMaxes, start domain.Date) (p *domain.UserProgress, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"plan_start": start.String()}
	defer func() { reportUseCase(ctx, s.observer, "initialize", startedAt, fields, err) }()

	if err = validateMaxes(maxes); err != nil {
		return nil, err
	}
	if start.IsZero() {
		start = domain.DateOf(s.now())
	}
	fields["plan_start"] = start.String()

	fresh := domain.NewUserProgress(maxes)
	now := s.now().UTC()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		if err := txProgress.Reset(ctx); err != nil {
			return err
		}
		if err := txProgress.Save(ctx, &fresh); err != nil {
			return err
		}
		return upsertProfile(ctx, txProfiles, start, now)
	})
	if err != nil {
		return nil, fmt.Errorf("initializing progress: %w", err)
	}
	return &fresh, nil
}

// upsertProfile moves the plan start, keeping the original creation time.
func upsertProfile(ctx context.Context, profiles repository.ProfileRepo, start domain.Date, now time.Time) error {
	profile, err := profiles.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		profile = &domain.TrainingProfile{ID: "default", CreatedAt: now}
	case err != nil:
		return err
	}
	profile.PlanStartDate = start
	profile.UpdatedAt = now
	return profiles.Upsert(ctx, profile)
}

func (s *progressService) UpdateMaxes(ctx context.Context, maxes domain.UserMaxes) (p *domain.UserProgress, err error) {
	startedAt := time.Now().UTC()
	defer func() { reportUseCase(ctx, s.observer, "update-maxes", startedAt, nil, err) }()

	if err = validateMaxes(maxes); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		current, err := loadProgress(ctx, txProgress, s.defaults)
		if err != nil {
			return err
		}
		current.Maxes = maxes
		p = current
		return txProgress.Save(ctx, current)
	})
	if err != nil {
		return nil, fmt.Errorf("updating maxes: %w", err)
	}
	return p, nil
}

func (s *progressService) CompleteWorkout(ctx context.Context, in app.CompleteWorkoutInput) (result *app.CompletionResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": in.Date.String()}
	defer func() { reportUseCase(ctx, s.observer, "complete-workout", startedAt, fields, err) }()

	// Stored timestamps carry millisecond precision, matching the export format.
	completedAt := s.now().UTC().Truncate(time.Millisecond)
	if in.CompletedAt != nil {
		completedAt = in.CompletedAt.UTC().Truncate(time.Millisecond)
	}

	sets := make([]domain.CompletedSet, 0, len(in.Sets))
	for _, set := range in.Sets {
		if set.Reps <= 0 {
			continue
		}
		if set.CompletedAt.IsZero() {
			set.CompletedAt = completedAt
		}
		set.CompletedAt = set.CompletedAt.UTC().Truncate(time.Millisecond)
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return nil, ErrEmptyWorkout
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		profile, err := loadProfile(ctx, txProfiles)
		if err != nil {
			return err
		}
		before, err := loadProgress(ctx, txProgress, s.defaults)
		if err != nil {
			return err
		}

		workout, ok := planner.FindWorkoutByDate(planFor(profile, before), in.Date)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoWorkoutOnDate, in.Date)
		}
		if before.CompletedDates()[in.Date] {
			return fmt.Errorf("%w: %s", ErrAlreadyCompleted, in.Date)
		}

		recorded := progression.RecordCompletedWorkout(*before, workout.ID, in.Date, sets, completedAt)
		after := progression.UpdateAchievements(recorded)
		if err := txProgress.Save(ctx, &after); err != nil {
			return err
		}

		result = &app.CompletionResult{
			Workout:     workout,
			Recorded:    after.CompletedWorkouts[len(after.CompletedWorkouts)-1],
			XPEarned:    recorded.TotalXP - before.TotalXP,
			BonusXP:     after.TotalXP - recorded.TotalXP,
			LevelBefore: before.Level,
			LevelAfter:  after.Level,
			Unlocked:    progression.NewlyUnlocked(*before, after),
			DroppedSets: len(in.Sets) - len(sets),
			Progress:    after,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["workout_id"] = result.Workout.ID
	fields["xp_earned"] = result.XPEarned
	fields["bonus_xp"] = result.BonusXP
	fields["unlocked"] = len(result.Unlocked)
	return result, nil
}

func (s *progressService) Achievements(ctx context.Context) ([]app.AchievementView, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	catalog := progression.Catalog()
	views := make([]app.AchievementView, 0, len(catalog))
	for _, a := range catalog {
		views = append(views, app.AchievementView{Achievement: a, Unlocked: p.HasUnlocked(a.ID)})
	}
	return views, nil
}

func (s *progressService) Import(ctx context.Context, doc *importer.ProgressDocument) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"workouts": len(doc.CompletedWorkouts)}
	defer func() { reportUseCase(ctx, s.observer, "import-progress", startedAt, fields, err) }()

	if errs := importer.ValidateDocument(doc); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(errs...))
	}
	p, err := importer.ToProgress(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	now := s.now()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		start, err := importStartDate(ctx, txProfiles, p, domain.DateOf(now))
		if err != nil {
			return err
		}
		if err := txProgress.Reset(ctx); err != nil {
			return err
		}
		if err := txProgress.Save(ctx, &p); err != nil {
			return err
		}
		if err := upsertProfile(ctx, txProfiles, start, now.UTC()); err != nil {
			return err
		}
		result = &app.ImportResult{
			WorkoutCount:  len(p.CompletedWorkouts),
			UnlockedCount: len(p.UnlockedAchievements),
			TotalXP:       p.TotalXP,
			Level:         p.Level,
			PlanStartDate: start,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing progress: %w", err)
	}
	return result, nil
}

// importStartDate keeps an existing plan anchor. Without one, the plan starts
// at the earliest imported workout, or today for an empty history.
func importStartDate(ctx context.Context, profiles repository.ProfileRepo, p domain.UserProgress, today domain.Date) (domain.Date, error) {
	profile, err := profiles.Get(ctx)
	if err == nil {
		return profile.PlanStartDate, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return domain.Date{}, err
	}
	if len(p.CompletedWorkouts) == 0 {
		return today, nil
	}
	earliest := p.CompletedWorkouts[0].Date
	for _, w := range p.CompletedWorkouts[1:] {
		if w.Date.Before(earliest) {
			earliest = w.Date
		}
	}
	return earliest, nil
}

func (s *progressService) Export(ctx context.Context) (*importer.ProgressDocument, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return importer.FromProgress(*p), nil
}
