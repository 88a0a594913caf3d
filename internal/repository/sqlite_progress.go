package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/google/uuid"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
// Save performs several statements; run it inside a UnitOfWork for atomicity.
type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context) (*domain.UserProgress, error) {
	p, err := r.getHeader(ctx)
	if err != nil {
		return nil, err
	}

	workouts, ids, err := r.listWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	sets, err := r.listSets(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if s, ok := sets[ids[i]]; ok {
			workouts[i].Sets = s
		}
	}
	p.CompletedWorkouts = workouts

	unlocked, err := r.listUnlocked(ctx)
	if err != nil {
		return nil, err
	}
	p.UnlockedAchievements = unlocked

	return p, nil
}

func (r *SQLiteProgressRepo) getHeader(ctx context.Context) (*domain.UserProgress, error) {
	query := `SELECT max_pullups, max_squats, max_abs, max_pushups,
		total_xp, level, streak_days, last_workout_date
		FROM user_progress WHERE id = 'default'`

	var p domain.UserProgress
	var lastDate sql.NullString
	err := r.db.QueryRowContext(ctx, query).Scan(
		&p.Maxes.Pullups,
		&p.Maxes.Squats,
		&p.Maxes.Abs,
		&p.Maxes.Pushups,
		&p.TotalXP,
		&p.Level,
		&p.StreakDays,
		&lastDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user progress: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user progress: %w", err)
	}

	p.LastWorkoutDate, err = parseNullableDate(lastDate)
	if err != nil {
		return nil, fmt.Errorf("user progress last_workout_date: %w", err)
	}
	return &p, nil
}

// listWorkouts returns workouts in seq order together with their row ids.
func (r *SQLiteProgressRepo) listWorkouts(ctx context.Context) ([]domain.CompletedWorkout, []string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, workout_id, date, completed_at, xp_earned
		FROM completed_workouts ORDER BY seq`)
	if err != nil {
		return nil, nil, fmt.Errorf("listing completed workouts: %w", err)
	}
	defer rows.Close()

	workouts := []domain.CompletedWorkout{}
	var ids []string
	for rows.Next() {
		var id, date, completedAt string
		w := domain.CompletedWorkout{Sets: []domain.CompletedSet{}}
		if err := rows.Scan(&id, &w.WorkoutID, &date, &completedAt, &w.XPEarned); err != nil {
			return nil, nil, fmt.Errorf("scanning completed workout: %w", err)
		}
		if w.Date, err = domain.ParseDate(date); err != nil {
			return nil, nil, fmt.Errorf("completed workout %s: %w", id, err)
		}
		if w.CompletedAt, err = parseTimestamp(completedAt); err != nil {
			return nil, nil, fmt.Errorf("completed workout %s: %w", id, err)
		}
		workouts = append(workouts, w)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating completed workouts: %w", err)
	}
	return workouts, ids, nil
}

func (r *SQLiteProgressRepo) listSets(ctx context.Context) (map[string][]domain.CompletedSet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT completed_workout_id, exercise, set_index, reps, completed_at
		FROM completed_sets ORDER BY completed_workout_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing completed sets: %w", err)
	}
	defer rows.Close()

	sets := make(map[string][]domain.CompletedSet)
	for rows.Next() {
		var workoutRowID, kind, completedAt string
		var s domain.CompletedSet
		if err := rows.Scan(&workoutRowID, &kind, &s.SetIndex, &s.Reps, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning completed set: %w", err)
		}
		s.Kind = domain.ExerciseKind(kind)
		if s.CompletedAt, err = parseTimestamp(completedAt); err != nil {
			return nil, fmt.Errorf("completed set of %s: %w", workoutRowID, err)
		}
		sets[workoutRowID] = append(sets[workoutRowID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completed sets: %w", err)
	}
	return sets, nil
}

func (r *SQLiteProgressRepo) listUnlocked(ctx context.Context) ([]domain.AchievementID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT achievement_id FROM unlocked_achievements ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing unlocked achievements: %w", err)
	}
	defer rows.Close()

	ids := []domain.AchievementID{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning unlocked achievement: %w", err)
		}
		ids = append(ids, domain.AchievementID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unlocked achievements: %w", err)
	}
	return ids, nil
}

// Save writes the header, appends workouts not yet stored, and replaces the
// unlocked set. Stored workouts are never rewritten.
func (r *SQLiteProgressRepo) Save(ctx context.Context, p *domain.UserProgress) error {
	query := `INSERT INTO user_progress (id, max_pullups, max_squats, max_abs, max_pushups,
		total_xp, level, streak_days, last_workout_date, updated_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			max_pullups = excluded.max_pullups,
			max_squats = excluded.max_squats,
			max_abs = excluded.max_abs,
			max_pushups = excluded.max_pushups,
			total_xp = excluded.total_xp,
			level = excluded.level,
			streak_days = excluded.streak_days,
			last_workout_date = excluded.last_workout_date,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.Maxes.Pullups,
		p.Maxes.Squats,
		p.Maxes.Abs,
		p.Maxes.Pushups,
		p.TotalXP,
		p.Level,
		p.StreakDays,
		nullableDateToValue(p.LastWorkoutDate),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting user progress: %w", err)
	}

	if err := r.appendWorkouts(ctx, p.CompletedWorkouts); err != nil {
		return err
	}
	return r.replaceUnlocked(ctx, p.UnlockedAchievements)
}

func (r *SQLiteProgressRepo) appendWorkouts(ctx context.Context, workouts []domain.CompletedWorkout) error {
	var stored int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completed_workouts`).Scan(&stored); err != nil {
		return fmt.Errorf("counting completed workouts: %w", err)
	}
	if stored > len(workouts) {
		return fmt.Errorf("saving %d workouts over %d stored: %w", len(workouts), stored, ErrHistoryRewrite)
	}

	for seq := stored; seq < len(workouts); seq++ {
		w := workouts[seq]
		rowID := uuid.New().String()
		_, err := r.db.ExecContext(ctx, `INSERT INTO completed_workouts
			(id, seq, workout_id, date, completed_at, xp_earned) VALUES (?, ?, ?, ?, ?, ?)`,
			rowID, seq, w.WorkoutID, w.Date.String(), formatTimestamp(w.CompletedAt), w.XPEarned)
		if err != nil {
			return fmt.Errorf("inserting completed workout %d: %w", seq, err)
		}
		for pos, s := range w.Sets {
			_, err := r.db.ExecContext(ctx, `INSERT INTO completed_sets
				(completed_workout_id, position, exercise, set_index, reps, completed_at)
				VALUES (?, ?, ?, ?, ?, ?)`,
				rowID, pos, string(s.Kind), s.SetIndex, s.Reps, formatTimestamp(s.CompletedAt))
			if err != nil {
				return fmt.Errorf("inserting set %d of workout %d: %w", pos, seq, err)
			}
		}
	}
	return nil
}

func (r *SQLiteProgressRepo) replaceUnlocked(ctx context.Context, ids []domain.AchievementID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM unlocked_achievements`); err != nil {
		return fmt.Errorf("clearing unlocked achievements: %w", err)
	}
	for pos, id := range ids {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO unlocked_achievements (achievement_id, position) VALUES (?, ?)`, string(id), pos)
		if err != nil {
			return fmt.Errorf("inserting unlocked achievement %s: %w", id, err)
		}
	}
	return nil
}

// Reset removes all stored progress. Used before re-initializing or importing.
func (r *SQLiteProgressRepo) Reset(ctx context.Context) error {
	for _, stmt := range []string{
		`DELETE FROM completed_sets`,
		`DELETE FROM completed_workouts`,
		`DELETE FROM unlocked_achievements`,
		`DELETE FROM user_progress`,
	} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("resetting progress: %w", err)
		}
	}
	return nil
}
