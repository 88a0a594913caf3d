package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/fittrack/internal/cli"
	"github.com/alexanderramin/fittrack/internal/config"
	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/repository"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, service.ErrNotInitialized) {
			fmt.Fprintln(os.Stderr, "Run `fittrack init` to create your 90-day plan.")
		}
		os.Exit(1)
	}
}

func run() error {
	// FITTRACK_CONFIG points at an explicit file; otherwise ~/.fittrack/config.yaml is optional.
	cfg, err := config.Load(os.Getenv("FITTRACK_CONFIG"))
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clock := func() time.Time { return time.Now().In(loc) }

	// Open database
	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	progressRepo := repository.NewSQLiteProgressRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	observer := service.NewSlogUseCaseObserver(logger)
	defaults := cfg.DefaultMaxes()
	progressSvc := service.NewProgressService(progressRepo, profileRepo, uow, defaults, clock, observer)

	app := &cli.App{
		Progress: progressSvc,
		Plans:    service.NewPlanService(progressRepo, profileRepo, defaults),
		Status:   service.NewStatusService(progressRepo, profileRepo, defaults, observer),
		History:  service.NewHistoryService(progressRepo, profileRepo, defaults, clock),

		Log:      progressSvc,
		Init:     progressSvc,
		Transfer: progressSvc,

		Now: clock,
	}

	// Prompts and the rest timer need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds the slog logger from config. An empty log file means stderr.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}
