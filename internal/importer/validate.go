package importer

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/progression"
)

// ValidateDocument checks the document for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateDocument(doc *ProgressDocument) []error {
	var errs []error

	errs = append(errs, validateMaxes(&doc.Maxes)...)
	errs = append(errs, validateWorkouts(doc.CompletedWorkouts)...)
	errs = append(errs, validateUnlocked(doc.UnlockedAchievements)...)

	if doc.TotalXP < 0 {
		errs = append(errs, fmt.Errorf("totalXp must be >= 0, got %d", doc.TotalXP))
	} else if want := progression.LevelForXP(doc.TotalXP); doc.Level != want {
		errs = append(errs, fmt.Errorf("level %d does not match totalXp %d (expected level %d)", doc.Level, doc.TotalXP, want))
	}
	if doc.StreakDays < 0 {
		errs = append(errs, fmt.Errorf("streakDays must be >= 0, got %d", doc.StreakDays))
	}
	if doc.LastWorkoutDate != nil {
		if _, err := domain.ParseDate(*doc.LastWorkoutDate); err != nil {
			errs = append(errs, fmt.Errorf("lastWorkoutDate: invalid date format %q (expected YYYY-MM-DD)", *doc.LastWorkoutDate))
		}
	} else if len(doc.CompletedWorkouts) > 0 {
		errs = append(errs, fmt.Errorf("lastWorkoutDate is required when completedWorkouts is not empty"))
	}

	if len(errs) == 0 {
		if err := validateUnlockedMatchesProgress(doc); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func validateMaxes(m *MaxesDocument) []error {
	var errs []error
	for _, f := range []struct {
		name  string
		value int
	}{
		{"pullups", m.Pullups},
		{"squats", m.Squats},
		{"abs", m.Abs},
		{"pushups", m.Pushups},
	} {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("maxes.%s must be >= 0, got %d", f.name, f.value))
		}
	}
	return errs
}

func validateWorkouts(workouts []WorkoutDocument) []error {
	var errs []error

	for i, w := range workouts {
		prefix := fmt.Sprintf("completedWorkouts[%d]", i)

		if w.WorkoutID == "" {
			errs = append(errs, fmt.Errorf("%s.workoutId is required", prefix))
		}
		if _, err := domain.ParseDate(w.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, w.Date))
		}
		if _, err := parseTimestamp(w.CompletedAt); err != nil {
			errs = append(errs, fmt.Errorf("%s.completedAt: %w", prefix, err))
		}
		if w.XPEarned < 0 {
			errs = append(errs, fmt.Errorf("%s.xpEarned must be >= 0, got %d", prefix, w.XPEarned))
		}

		for j, s := range w.CompletedSets {
			setPrefix := fmt.Sprintf("%s.completedSets[%d]", prefix, j)
			if !domain.ValidExerciseKinds[s.ExerciseType] {
				errs = append(errs, fmt.Errorf("%s.exerciseType: invalid value %q", setPrefix, s.ExerciseType))
			}
			if s.SetIndex < 0 {
				errs = append(errs, fmt.Errorf("%s.setIndex must be >= 0, got %d", setPrefix, s.SetIndex))
			}
			if s.Reps < 0 {
				errs = append(errs, fmt.Errorf("%s.reps must be >= 0, got %d", setPrefix, s.Reps))
			}
			if _, err := parseTimestamp(s.CompletedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.completedAt: %w", setPrefix, err))
			}
		}
	}

	return errs
}

func validateUnlocked(ids []string) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, id := range ids {
		if _, ok := progression.FindAchievement(domain.AchievementID(id)); !ok {
			errs = append(errs, fmt.Errorf("unlockedAchievements[%d]: unknown achievement %q", i, id))
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("unlockedAchievements[%d]: duplicate achievement %q", i, id))
		}
		seen[id] = true
	}
	return errs
}

// validateUnlockedMatchesProgress requires the unlocked list to equal the set
// of achievements the document's own history satisfies. Only meaningful once
// every field parses.
func validateUnlockedMatchesProgress(doc *ProgressDocument) error {
	p, err := ToProgress(doc)
	if err != nil {
		return err
	}
	want := progression.Satisfied(p)
	got := slices.Clone(p.UnlockedAchievements)
	slices.Sort(got)
	sorted := slices.Clone(want)
	slices.Sort(sorted)
	if !slices.Equal(got, sorted) {
		return fmt.Errorf("unlockedAchievements %v do not match achievements satisfied by this progress %v", doc.UnlockedAchievements, want)
	}
	return nil
}
