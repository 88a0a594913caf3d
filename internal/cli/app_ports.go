package cli

import "github.com/alexanderramin/fittrack/internal/app"

func (a *App) completeWorkoutUseCase() app.CompleteWorkoutUseCase {
	if a.Log != nil {
		return a.Log
	}
	return a.Progress
}

func (a *App) initializeUseCase() app.InitializeUseCase {
	if a.Init != nil {
		return a.Init
	}
	return a.Progress
}

func (a *App) importProgressUseCase() app.ImportProgressUseCase {
	if a.Transfer != nil {
		return a.Transfer
	}
	return a.Progress
}
