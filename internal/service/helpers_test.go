package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/repository"
	"github.com/alexanderramin/fittrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

// planStart is a Monday; training days follow on Jan 3, 5, 8, ...
var planStart = domain.MustParseDate("2024-01-01")

var testMaxes = domain.UserMaxes{Pullups: 8, Squats: 40, Abs: 30, Pushups: 30}

func setupRepos(t *testing.T) (*repository.SQLiteProgressRepo, *repository.SQLiteProfileRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteProgressRepo(database),
		repository.NewSQLiteProfileRepo(database),
		testutil.NewTestUoW(database)
}

func fixedClock(at time.Time) Clock {
	return func() time.Time { return at }
}

func clockOn(d domain.Date) Clock {
	return fixedClock(time.Date(d.Year, d.Month, d.Day, 19, 0, 0, 0, time.UTC))
}

// initialized returns a progress service with a plan starting on planStart.
func initialized(t *testing.T, progress repository.ProgressRepo, profiles repository.ProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProgressService {
	t.Helper()
	svc := NewProgressService(progress, profiles, uow, domain.DefaultMaxes, clockOn(planStart), observers...)
	_, err := svc.Initialize(context.Background(), testMaxes, planStart)
	require.NoError(t, err)
	return svc
}

func complete(t *testing.T, svc ProgressService, date domain.Date, sets ...domain.CompletedSet) *app.CompletionResult {
	t.Helper()
	res, err := svc.CompleteWorkout(context.Background(), app.CompleteWorkoutInput{Date: date, Sets: sets})
	require.NoError(t, err)
	return res
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}
