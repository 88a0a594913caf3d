package repository

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrHistoryRewrite indicates a save would drop workouts that are already
	// stored. The completed-workout history is append-only.
	ErrHistoryRewrite = errors.New("completed workout history is append-only")
)
