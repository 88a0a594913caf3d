package cli

import (
	"time"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Progress service.ProgressService
	Plans    service.PlanService
	Status   service.StatusService
	History  service.HistoryService

	// Use-case ports. Nil falls back to Progress.
	Log      app.CompleteWorkoutUseCase
	Init     app.InitializeUseCase
	Transfer app.ImportProgressUseCase

	// Now is the application clock in the user's zone. Nil means time.Now.
	Now func() time.Time
	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) today() domain.Date {
	return domain.DateOf(a.now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "fittrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fittrack",
		Short:         "90-day calisthenics plan with XP, levels and achievements",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app)
		},
	}

	root.AddCommand(
		newInitCmd(app),
		newPlanCmd(app),
		newShowCmd(app),
		newLogCmd(app),
		newMaxesCmd(app),
		newStatusCmd(app),
		newAchievementsCmd(app),
		newHistoryCmd(app),
		newRestCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
