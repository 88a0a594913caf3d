package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(a *App) *cobra.Command {
	var planned bool
	date := newDateValue(a.today)
	reps := make(map[domain.ExerciseKind]*[]int)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a completed workout",
		Long: `Log the sets you completed for a planned workout.

Pass reps per set for each exercise, e.g.
  fittrack log --pullups 5,5,4,4 --squats 20,20,20,20 --abs 15,15,15 --pushups 12,12,10,10

Use --planned to log every planned set as done.`,
		Example: "  fittrack log --date yesterday --pullups 6,6,5,5",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day := date.get()

			anyReps := false
			for _, kind := range domain.ExerciseKinds {
				if cmd.Flags().Changed(string(kind)) {
					anyReps = true
				}
			}

			var sets []domain.CompletedSet
			switch {
			case anyReps:
				for _, kind := range domain.ExerciseKinds {
					sets = append(sets, completedSets(kind, *reps[kind])...)
				}
			case planned:
				w, err := a.Plans.WorkoutFor(ctx, day)
				if err != nil {
					return err
				}
				sets = plannedSets(*w)
			case a.interactive():
				w, err := a.Plans.WorkoutFor(ctx, day)
				if err != nil {
					return err
				}
				values := make(map[domain.ExerciseKind]*string)
				if err := wizardLogSets(*w, values).Run(); err != nil {
					return err
				}
				for _, kind := range domain.ExerciseKinds {
					s, ok := values[kind]
					if !ok {
						continue
					}
					r, err := parseRepList(*s)
					if err != nil {
						return err
					}
					sets = append(sets, completedSets(kind, r)...)
				}
			default:
				return fmt.Errorf("no sets given; pass --pullups 5,5,4,4 (and --squats, --abs, --pushups) or --planned")
			}

			result, err := a.completeWorkoutUseCase().CompleteWorkout(ctx, app.CompleteWorkoutInput{
				Date: day,
				Sets: sets,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCompletion(result))
			return nil
		},
	}

	cmd.Flags().Var(date, "date", "Workout date (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().BoolVar(&planned, "planned", false, "Log every planned set as completed")
	for _, kind := range domain.ExerciseKinds {
		reps[kind] = cmd.Flags().IntSlice(string(kind), nil, fmt.Sprintf("%s reps per set, comma-separated", formatter.ExerciseLabel(kind)))
	}

	return cmd
}

// completedSets numbers reps as consecutive sets of one exercise.
// CompletedAt is left zero for the service clock to fill in.
func completedSets(kind domain.ExerciseKind, reps []int) []domain.CompletedSet {
	sets := make([]domain.CompletedSet, 0, len(reps))
	for i, r := range reps {
		sets = append(sets, domain.CompletedSet{Kind: kind, SetIndex: i, Reps: r})
	}
	return sets
}

func plannedSets(w domain.WorkoutDay) []domain.CompletedSet {
	var sets []domain.CompletedSet
	for _, ex := range w.Exercises {
		reps := make([]int, len(ex.Sets))
		for i, s := range ex.Sets {
			reps[i] = s.TargetReps
		}
		sets = append(sets, completedSets(ex.Kind, reps)...)
	}
	return sets
}
