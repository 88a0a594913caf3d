package domain

import (
	"slices"
	"time"
)

type CompletedSet struct {
	Kind        ExerciseKind
	SetIndex    int
	Reps        int
	CompletedAt time.Time
}

type CompletedWorkout struct {
	WorkoutID   string
	Date        Date
	Sets        []CompletedSet
	CompletedAt time.Time
	XPEarned    int
}

// UserProgress is the aggregate state of the single user.
// Transitions always produce a new value; see Clone.
type UserProgress struct {
	Maxes                UserMaxes
	CompletedWorkouts    []CompletedWorkout
	TotalXP              int
	Level                int
	UnlockedAchievements []AchievementID
	StreakDays           int
	LastWorkoutDate      *Date
}

// NewUserProgress returns the starting state for a user with the given maxes.
func NewUserProgress(maxes UserMaxes) UserProgress {
	return UserProgress{
		Maxes:                maxes,
		CompletedWorkouts:    []CompletedWorkout{},
		Level:                1,
		UnlockedAchievements: []AchievementID{},
	}
}

// Clone returns a deep copy that shares no slices or pointers with p.
func (p UserProgress) Clone() UserProgress {
	out := p
	out.CompletedWorkouts = make([]CompletedWorkout, len(p.CompletedWorkouts))
	for i, w := range p.CompletedWorkouts {
		w.Sets = slices.Clone(w.Sets)
		if w.Sets == nil {
			w.Sets = []CompletedSet{}
		}
		out.CompletedWorkouts[i] = w
	}
	out.UnlockedAchievements = slices.Clone(p.UnlockedAchievements)
	if out.UnlockedAchievements == nil {
		out.UnlockedAchievements = []AchievementID{}
	}
	if p.LastWorkoutDate != nil {
		d := *p.LastWorkoutDate
		out.LastWorkoutDate = &d
	}
	return out
}

// HasUnlocked reports whether the achievement id is in the unlocked set.
func (p UserProgress) HasUnlocked(id AchievementID) bool {
	return slices.Contains(p.UnlockedAchievements, id)
}

// CompletedDates returns the set of dates that have at least one completed workout.
func (p UserProgress) CompletedDates() map[Date]bool {
	dates := make(map[Date]bool, len(p.CompletedWorkouts))
	for _, w := range p.CompletedWorkouts {
		dates[w.Date] = true
	}
	return dates
}
