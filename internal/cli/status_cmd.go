package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, streak, plan progress and today's workout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app)
		},
	}
}

func runStatus(cmd *cobra.Command, app *App) error {
	view, err := app.Status.GetStatus(context.Background(), app.today())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(view))
	return nil
}

func newAchievementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "List achievements and which are unlocked",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Progress.Achievements(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievements(views))
			return nil
		},
	}
}
