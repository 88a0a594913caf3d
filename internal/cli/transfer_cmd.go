package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/importer"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export progress as JSON (stdout when FILE is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.importProgressUseCase().Export(context.Background())
			if err != nil {
				return err
			}

			if len(args) == 0 || args[0] == "-" {
				return importer.Encode(cmd.OutOrStdout(), doc)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			if err := importer.Encode(f, doc); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d workouts to %s\n", len(doc.CompletedWorkouts), args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace progress with a JSON export (FILE may be - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				doc *importer.ProgressDocument
				err error
			)
			if args[0] == "-" {
				doc, err = importer.Decode(cmd.InOrStdin())
			} else {
				doc, err = importer.LoadDocument(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			result, err := app.importProgressUseCase().Import(context.Background(), doc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Progress imported"))
			fmt.Fprintf(out, "%d workouts, %d achievements, %d XP (level %d)\n",
				result.WorkoutCount, result.UnlockedCount, result.TotalXP, result.Level)
			fmt.Fprintln(out, formatter.Dim("Plan starts "+formatter.HumanDate(result.PlanStartDate)))
			return nil
		},
	}
}
