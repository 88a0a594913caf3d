package app

import (
	"context"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/importer"
)

type CompleteWorkoutUseCase interface {
	CompleteWorkout(ctx context.Context, in CompleteWorkoutInput) (*CompletionResult, error)
}

type InitializeUseCase interface {
	Initialize(ctx context.Context, maxes domain.UserMaxes, start domain.Date) (*domain.UserProgress, error)
}

type ImportProgressUseCase interface {
	Import(ctx context.Context, doc *importer.ProgressDocument) (*ImportResult, error)
	Export(ctx context.Context) (*importer.ProgressDocument, error)
}
