package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/importer"
)

type ProgressService interface {
	Load(ctx context.Context) (*domain.UserProgress, error)
	Initialize(ctx context.Context, maxes domain.UserMaxes, start domain.Date) (*domain.UserProgress, error)
	UpdateMaxes(ctx context.Context, maxes domain.UserMaxes) (*domain.UserProgress, error)
	CompleteWorkout(ctx context.Context, in app.CompleteWorkoutInput) (*app.CompletionResult, error)
	Achievements(ctx context.Context) ([]app.AchievementView, error)
	Import(ctx context.Context, doc *importer.ProgressDocument) (*app.ImportResult, error)
	Export(ctx context.Context) (*importer.ProgressDocument, error)
}

type PlanService interface {
	Profile(ctx context.Context) (*domain.TrainingProfile, error)
	Plan(ctx context.Context) ([]domain.WorkoutDay, error)
	WorkoutFor(ctx context.Context, date domain.Date) (*domain.WorkoutDay, error)
	Next(ctx context.Context, from domain.Date) (*domain.WorkoutDay, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, today domain.Date) (*app.StatusView, error)
}

type HistoryService interface {
	Month(ctx context.Context, year int, month time.Month) (*app.MonthView, error)
}
