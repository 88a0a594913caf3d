package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/planner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRestCmd(app *App) *cobra.Command {
	var focus string

	cmd := &cobra.Command{
		Use:   "rest [SECONDS]",
		Short: "Run a rest timer between sets",
		Long: `Run a countdown between sets. Without SECONDS the rest period of
the given --focus is used (strength 90s, endurance 45s, explosive 120s).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			load := domain.LoadType(focus)
			switch load {
			case domain.LoadStrength, domain.LoadEndurance, domain.LoadExplosive:
			default:
				return fmt.Errorf("invalid --focus %q (expected strength, endurance or explosive)", focus)
			}
			seconds := planner.RestSeconds(load)
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid rest duration %q (expected positive seconds)", args[0])
				}
				seconds = n
			}

			out := cmd.OutOrStdout()
			if !app.interactive() {
				fmt.Fprintf(out, "Rest %s\n", formatter.FormatRest(seconds))
				return nil
			}

			p := tea.NewProgram(newRestTimerModel(time.Duration(seconds)*time.Second),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(out))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("rest timer: %w", err)
			}

			if m, ok := final.(restTimerModel); ok && m.done {
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Rest over. Next set!"))
			} else {
				fmt.Fprintln(out, formatter.Dim("Rest skipped."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&focus, "focus", string(domain.LoadStrength), "Workout focus: strength, endurance or explosive")

	return cmd
}
