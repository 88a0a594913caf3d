package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/spf13/cobra"
)

// maxFlags binds one int flag per exercise kind.
type maxFlags struct {
	values map[domain.ExerciseKind]*int
}

func addMaxFlags(cmd *cobra.Command) *maxFlags {
	f := &maxFlags{values: make(map[domain.ExerciseKind]*int)}
	for _, kind := range domain.ExerciseKinds {
		f.values[kind] = cmd.Flags().Int(string(kind), 0, fmt.Sprintf("Max %s in one set", formatter.ExerciseLabel(kind)))
	}
	return f
}

func (f *maxFlags) anyChanged(cmd *cobra.Command) bool {
	for _, kind := range domain.ExerciseKinds {
		if cmd.Flags().Changed(string(kind)) {
			return true
		}
	}
	return false
}

// apply overrides base with the flags the user set.
func (f *maxFlags) apply(cmd *cobra.Command, base domain.UserMaxes) domain.UserMaxes {
	set := func(kind domain.ExerciseKind, dst *int) {
		if cmd.Flags().Changed(string(kind)) {
			*dst = *f.values[kind]
		}
	}
	set(domain.ExercisePullups, &base.Pullups)
	set(domain.ExerciseSquats, &base.Squats)
	set(domain.ExerciseAbs, &base.Abs)
	set(domain.ExercisePushups, &base.Pushups)
	return base
}

func newInitCmd(app *App) *cobra.Command {
	var force bool
	var maxes *maxFlags
	start := newDateValue(app.today)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Start a new 90-day plan from your current maxes",
		Long: `Start a new 90-day plan. This resets XP, level, streak, achievements
and workout history. Maxes not given as flags keep their current values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			current, err := app.Progress.Load(ctx)
			if err != nil {
				return err
			}
			newMaxes := maxes.apply(cmd, current.Maxes)
			startDate := start.get()

			if app.interactive() && !maxes.anyChanged(cmd) && !cmd.Flags().Changed("start") {
				values := newInitFormValues(newMaxes, startDate)
				if err := wizardInit(values).Run(); err != nil {
					return err
				}
				if newMaxes, startDate, err = values.parse(startDate); err != nil {
					return err
				}
			}

			if n := len(current.CompletedWorkouts); n > 0 && !force {
				confirmed := false
				if app.interactive() {
					prompt := fmt.Sprintf("Reset progress (%d workouts, %d XP)?", n, current.TotalXP)
					if err := wizardConfirm(prompt, &confirmed).Run(); err != nil {
						return err
					}
				}
				if !confirmed {
					return fmt.Errorf("existing progress has %d workouts; rerun with --force to reset it", n)
				}
			}

			if _, err := app.initializeUseCase().Initialize(ctx, newMaxes, startDate); err != nil {
				return err
			}

			plan, err := app.Plans.Plan(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Plan initialized"))
			fmt.Fprintf(out, "%s → %s, %d training days\n",
				formatter.HumanDate(plan[0].Date), formatter.HumanDate(plan[len(plan)-1].Date), len(plan))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Maxes: pull-ups %d, squats %d, abs %d, push-ups %d",
				newMaxes.Pullups, newMaxes.Squats, newMaxes.Abs, newMaxes.Pushups)))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatWorkout(plan[0], app.today(), false))
			return nil
		},
	}

	cmd.Flags().Var(start, "start", "Plan start date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().BoolVar(&force, "force", false, "Reset existing progress without asking")
	maxes = addMaxFlags(cmd)

	return cmd
}
