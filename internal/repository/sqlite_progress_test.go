package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepo_Get_NotFoundBeforeSave(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressRepo_SaveAndGet_FreshProgress(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProgress()
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Nil(t, got.LastWorkoutDate)
	assert.NotNil(t, got.CompletedWorkouts)
	assert.NotNil(t, got.UnlockedAchievements)
}

func TestProgressRepo_SaveAndGet_RoundTripsHistory(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d1 := domain.MustParseDate("2024-01-01")
	d2 := domain.MustParseDate("2024-01-03")
	sets := append(testutil.Sets(domain.ExercisePullups, 5, 5, 4), testutil.Sets(domain.ExerciseSquats, 20, 20)...)
	p := testutil.NewTestProgress(
		testutil.WithMaxes(domain.UserMaxes{Pullups: 10, Squats: 50, Abs: 40, Pushups: 35}),
		testutil.WithCompleted("w1", d1, 92, sets...),
		testutil.WithCompleted("w2", d2, 50),
		testutil.WithTotalXP(322, 3),
		testutil.WithStreak(1, d2),
		testutil.WithUnlocked("first-workout", "pull-up-master"),
	)
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	require.Len(t, got.CompletedWorkouts, 2)
	assert.Equal(t, "w1", got.CompletedWorkouts[0].WorkoutID)
	assert.Len(t, got.CompletedWorkouts[0].Sets, 5)
	assert.Empty(t, got.CompletedWorkouts[1].Sets)
}

func TestProgressRepo_Save_AppendsOnlyNewWorkouts(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(database)
	ctx := context.Background()

	d1 := domain.MustParseDate("2024-01-01")
	p := testutil.NewTestProgress(testutil.WithCompleted("w1", d1, 50))
	require.NoError(t, repo.Save(ctx, p))

	var firstID string
	require.NoError(t, database.QueryRowContext(ctx,
		`SELECT id FROM completed_workouts WHERE seq = 0`).Scan(&firstID))

	testutil.WithCompleted("w2", d1.AddDays(2), 60)(p)
	require.NoError(t, repo.Save(ctx, p))

	var count int
	require.NoError(t, database.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM completed_workouts`).Scan(&count))
	assert.Equal(t, 2, count)

	var stillFirst string
	require.NoError(t, database.QueryRowContext(ctx,
		`SELECT id FROM completed_workouts WHERE seq = 0`).Scan(&stillFirst))
	assert.Equal(t, firstID, stillFirst, "stored rows are not rewritten")
}

func TestProgressRepo_Save_RejectsShorterHistory(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d1 := domain.MustParseDate("2024-01-01")
	p := testutil.NewTestProgress(
		testutil.WithCompleted("w1", d1, 50),
		testutil.WithCompleted("w2", d1.AddDays(2), 50),
	)
	require.NoError(t, repo.Save(ctx, p))

	p.CompletedWorkouts = p.CompletedWorkouts[:1]
	err := repo.Save(ctx, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHistoryRewrite)
}

func TestProgressRepo_Save_ReplacesUnlockedInOrder(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProgress(testutil.WithUnlocked("first-workout"))
	require.NoError(t, repo.Save(ctx, p))

	p.UnlockedAchievements = []domain.AchievementID{"first-workout", "level-five", "streak-3"}
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.UnlockedAchievements, got.UnlockedAchievements)
}

func TestProgressRepo_Reset_ClearsEverything(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d1 := domain.MustParseDate("2024-01-01")
	p := testutil.NewTestProgress(
		testutil.WithCompleted("w1", d1, 50, testutil.Sets(domain.ExerciseAbs, 10)...),
		testutil.WithUnlocked("first-workout"),
	)
	require.NoError(t, repo.Save(ctx, p))
	require.NoError(t, repo.Reset(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	fresh := testutil.NewTestProgress()
	require.NoError(t, repo.Save(ctx, fresh))
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.CompletedWorkouts)
}

func TestProgressRepo_Save_RollsBackInsideUnitOfWork(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: assert.AnError}

	d1 := domain.MustParseDate("2024-01-01")
	p := testutil.NewTestProgress(testutil.WithCompleted("w1", d1, 50, testutil.Sets(domain.ExerciseAbs, 10, 10)...))

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteProgressRepo(tx).Save(ctx, p)
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewSQLiteProgressRepo(database).Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
