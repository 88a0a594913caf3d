package repository

import (
	"context"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// ProgressRepo persists the single user's UserProgress aggregate.
type ProgressRepo interface {
	Get(ctx context.Context) (*domain.UserProgress, error)
	Save(ctx context.Context, p *domain.UserProgress) error
	Reset(ctx context.Context) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.TrainingProfile, error)
	Upsert(ctx context.Context, p *domain.TrainingProfile) error
}
