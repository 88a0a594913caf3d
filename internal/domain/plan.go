package domain

// UserMaxes holds the baseline single-session rep count for each exercise.
type UserMaxes struct {
	Pullups int
	Squats  int
	Abs     int
	Pushups int
}

// DefaultMaxes seeds a fresh profile when the user has not entered any.
var DefaultMaxes = UserMaxes{Pullups: 7, Squats: 40, Abs: 30, Pushups: 30}

// For returns the baseline max for the given exercise kind, or 0 if unknown.
func (m UserMaxes) For(kind ExerciseKind) int {
	switch kind {
	case ExercisePullups:
		return m.Pullups
	case ExerciseSquats:
		return m.Squats
	case ExerciseAbs:
		return m.Abs
	case ExercisePushups:
		return m.Pushups
	default:
		return 0
	}
}

type ExerciseSet struct {
	TargetReps  int
	RestSeconds int
	LoadType    LoadType
}

type WorkoutExercise struct {
	Kind ExerciseKind
	Sets []ExerciseSet
	Note string
}

// WorkoutDay is one scheduled training session of the 90-day plan.
type WorkoutDay struct {
	ID         string
	Date       Date
	WeekNumber int
	DayNumber  int
	IsMaxCheck bool
	Exercises  []WorkoutExercise
	Focus      LoadType
}

// Exercise returns the planned exercise of the given kind.
func (w WorkoutDay) Exercise(kind ExerciseKind) (WorkoutExercise, bool) {
	for _, ex := range w.Exercises {
		if ex.Kind == kind {
			return ex, true
		}
	}
	return WorkoutExercise{}, false
}
