package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	month := &monthValue{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show a calendar of planned and completed workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, m := month.year, month.month
			if year == 0 {
				today := app.today()
				year, m = today.Year, today.Month
			}

			view, err := app.History.Month(context.Background(), year, m)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(view))
			return nil
		},
	}

	cmd.Flags().Var(month, "month", "Month to show (YYYY-MM, default current month)")

	return cmd
}
