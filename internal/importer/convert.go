package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// FromProgress converts progress into its document form.
func FromProgress(p domain.UserProgress) *ProgressDocument {
	doc := &ProgressDocument{
		Maxes: MaxesDocument{
			Pullups: p.Maxes.Pullups,
			Squats:  p.Maxes.Squats,
			Abs:     p.Maxes.Abs,
			Pushups: p.Maxes.Pushups,
		},
		CompletedWorkouts:    make([]WorkoutDocument, 0, len(p.CompletedWorkouts)),
		TotalXP:              p.TotalXP,
		Level:                p.Level,
		UnlockedAchievements: make([]string, 0, len(p.UnlockedAchievements)),
		StreakDays:           p.StreakDays,
	}

	for _, w := range p.CompletedWorkouts {
		wd := WorkoutDocument{
			WorkoutID:     w.WorkoutID,
			Date:          w.Date.String(),
			CompletedSets: make([]SetDocument, 0, len(w.Sets)),
			CompletedAt:   formatTimestamp(w.CompletedAt),
			XPEarned:      w.XPEarned,
		}
		for _, s := range w.Sets {
			wd.CompletedSets = append(wd.CompletedSets, SetDocument{
				ExerciseType: string(s.Kind),
				SetIndex:     s.SetIndex,
				Reps:         s.Reps,
				CompletedAt:  formatTimestamp(s.CompletedAt),
			})
		}
		doc.CompletedWorkouts = append(doc.CompletedWorkouts, wd)
	}

	for _, id := range p.UnlockedAchievements {
		doc.UnlockedAchievements = append(doc.UnlockedAchievements, string(id))
	}

	if p.LastWorkoutDate != nil {
		s := p.LastWorkoutDate.String()
		doc.LastWorkoutDate = &s
	}
	return doc
}

// ToProgress transforms a validated document into domain progress.
// Call ValidateDocument first; ToProgress only reports the first parse error.
func ToProgress(doc *ProgressDocument) (domain.UserProgress, error) {
	p := domain.NewUserProgress(domain.UserMaxes{
		Pullups: doc.Maxes.Pullups,
		Squats:  doc.Maxes.Squats,
		Abs:     doc.Maxes.Abs,
		Pushups: doc.Maxes.Pushups,
	})
	p.TotalXP = doc.TotalXP
	p.Level = doc.Level
	p.StreakDays = doc.StreakDays

	for i, wd := range doc.CompletedWorkouts {
		date, err := domain.ParseDate(wd.Date)
		if err != nil {
			return domain.UserProgress{}, fmt.Errorf("completedWorkouts[%d]: %w", i, err)
		}
		completedAt, err := parseTimestamp(wd.CompletedAt)
		if err != nil {
			return domain.UserProgress{}, fmt.Errorf("completedWorkouts[%d]: %w", i, err)
		}
		w := domain.CompletedWorkout{
			WorkoutID:   wd.WorkoutID,
			Date:        date,
			Sets:        make([]domain.CompletedSet, 0, len(wd.CompletedSets)),
			CompletedAt: completedAt,
			XPEarned:    wd.XPEarned,
		}
		for j, sd := range wd.CompletedSets {
			at, err := parseTimestamp(sd.CompletedAt)
			if err != nil {
				return domain.UserProgress{}, fmt.Errorf("completedWorkouts[%d].completedSets[%d]: %w", i, j, err)
			}
			w.Sets = append(w.Sets, domain.CompletedSet{
				Kind:        domain.ExerciseKind(sd.ExerciseType),
				SetIndex:    sd.SetIndex,
				Reps:        sd.Reps,
				CompletedAt: at,
			})
		}
		p.CompletedWorkouts = append(p.CompletedWorkouts, w)
	}

	for _, id := range doc.UnlockedAchievements {
		p.UnlockedAchievements = append(p.UnlockedAchievements, domain.AchievementID(id))
	}

	if doc.LastWorkoutDate != nil {
		d, err := domain.ParseDate(*doc.LastWorkoutDate)
		if err != nil {
			return domain.UserProgress{}, fmt.Errorf("lastWorkoutDate: %w", err)
		}
		p.LastWorkoutDate = &d
	}
	return p, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// parseTimestamp accepts any RFC 3339 timestamp and normalizes it to UTC.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (expected ISO-8601)", s)
	}
	return t.UTC(), nil
}
