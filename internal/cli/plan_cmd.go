package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/planner"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the 90-day plan or one plan week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			today := app.today()

			plan, err := app.Plans.Plan(ctx)
			if err != nil {
				return err
			}
			progress, err := app.Progress.Load(ctx)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("%d-day plan", len(plan))
			days := plan
			if cmd.Flags().Changed("week") {
				weeks := planner.PlanLength / planner.DaysPerWeek
				if week < 1 || week > weeks {
					return fmt.Errorf("--week must be between 1 and %d", weeks)
				}
				days = planner.Week(plan, week)
				title = fmt.Sprintf("Week %d", week)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(title))
			fmt.Fprint(out, formatter.FormatPlan(days, progress.CompletedDates(), today))
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "Show only this plan week (1-30)")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [DATE]",
		Short: "Show the workout planned for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			today := app.today()

			date := today
			if len(args) == 1 {
				d, err := parseDateArg(args[0], today)
				if err != nil {
					return err
				}
				date = d
			}

			out := cmd.OutOrStdout()
			w, err := app.Plans.WorkoutFor(ctx, date)
			if errors.Is(err, service.ErrNoWorkoutOnDate) {
				fmt.Fprintf(out, "%s is a rest day.\n", formatter.HumanDate(date))
				next, err := app.Plans.Next(ctx, date)
				if errors.Is(err, service.ErrNoUpcomingWorkout) {
					fmt.Fprintln(out, formatter.Dim("No workouts left in the plan."))
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Next workout: %s %s\n", formatter.Bold(formatter.HumanDate(next.Date)),
					formatter.Dim("("+formatter.RelativeDay(next.Date, today)+")"))
				return nil
			}
			if err != nil {
				return err
			}

			progress, err := app.Progress.Load(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatWorkout(*w, today, progress.CompletedDates()[date]))
			return nil
		},
	}
}
