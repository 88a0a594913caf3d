package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.TrainingProfile, error) {
	query := `SELECT id, plan_start_date, created_at, updated_at
		FROM training_profile WHERE id = 'default'`

	var p domain.TrainingProfile
	var start, createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, query).Scan(&p.ID, &start, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("training profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning training profile: %w", err)
	}

	if p.PlanStartDate, err = domain.ParseDate(start); err != nil {
		return nil, fmt.Errorf("training profile plan_start_date: %w", err)
	}
	if p.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("training profile created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("training profile updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.TrainingProfile) error {
	if p.ID == "" {
		p.ID = "default"
	}
	query := `INSERT INTO training_profile (id, plan_start_date, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			plan_start_date = excluded.plan_start_date,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.PlanStartDate.String(),
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting training profile: %w", err)
	}
	return nil
}
