package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/spf13/cobra"
)

func newMaxesCmd(app *App) *cobra.Command {
	var maxes *maxFlags

	cmd := &cobra.Command{
		Use:   "maxes",
		Short: "Show or update your baseline maxes",
		Long: `Show your baseline maxes. With flags, update them; the plan is
regenerated from the new values while history is kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			progress, err := app.Progress.Load(ctx)
			if err != nil {
				return err
			}

			current := progress.Maxes
			if maxes.anyChanged(cmd) {
				updated, err := app.Progress.UpdateMaxes(ctx, maxes.apply(cmd, current))
				if err != nil {
					return err
				}
				current = updated.Maxes
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Maxes updated"))
			}

			rows := make([][]string, 0, len(domain.ExerciseKinds))
			for _, kind := range domain.ExerciseKinds {
				rows = append(rows, []string{formatter.ExerciseLabel(kind), fmt.Sprintf("%d", current.For(kind))})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"EXERCISE", "MAX"}, rows))
			return nil
		},
	}

	maxes = addMaxFlags(cmd)

	return cmd
}
