package service

import "errors"

var (
	// ErrNotInitialized means no training profile exists yet; run init first.
	ErrNotInitialized = errors.New("training plan not initialized")

	ErrInvalidMaxes = errors.New("maxes must be non-negative")

	// ErrNoWorkoutOnDate means the date is not a training day of the plan.
	ErrNoWorkoutOnDate = errors.New("no workout planned on date")

	// ErrNoUpcomingWorkout means the plan has no training day after the given date.
	ErrNoUpcomingWorkout = errors.New("no upcoming workout in plan")

	// ErrEmptyWorkout means every logged set had zero reps.
	ErrEmptyWorkout = errors.New("workout has no sets with reps")

	ErrAlreadyCompleted = errors.New("workout already completed on date")

	ErrInvalidDocument = errors.New("invalid progress document")
)
