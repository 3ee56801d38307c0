package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/clock"
	"github.com/at-ishikawa/briefly/internal/config"
	"github.com/at-ishikawa/briefly/internal/dashboard"
	"github.com/at-ishikawa/briefly/internal/database"
	"github.com/at-ishikawa/briefly/internal/generation"
	"github.com/at-ishikawa/briefly/internal/generation/backend"
	"github.com/at-ishikawa/briefly/internal/handoff"
	"github.com/at-ishikawa/briefly/internal/kvstore"
	"github.com/at-ishikawa/briefly/internal/streak"
	"github.com/at-ishikawa/briefly/internal/studysheet"
)

// Services are the components shared by the CLI and the server.
type Services struct {
	Config     *config.Config
	Clock      clock.Clock
	Store      *kvstore.Store
	Session    *kvstore.Store
	Flashcards *artifact.FlashcardSetRepository
	Quizzes    *artifact.QuizSetRepository
	Streak     *streak.Tracker
	Dashboard  *dashboard.Service
	Handoff    *handoff.Handoff
	Generator  generation.Client
	Exporter   *studysheet.Exporter
}

// NewServices builds every service from cfg. Connections are closed by app's shutdown hooks.
func NewServices(ctx context.Context, app *App, cfg *config.Config, clk clock.Clock, stdout io.Writer) (*Services, error) {
	medium, err := OpenMedium(ctx, app, cfg.Storage, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("OpenMedium() > %w", err)
	}
	store := kvstore.New(medium)
	session := kvstore.New(OpenSessionMedium(cfg.Storage))

	flashcards := artifact.NewFlashcardSetRepository(store, clk)
	quizzes := artifact.NewQuizSetRepository(store, clk)
	tracker := streak.NewTracker(store, clk)

	generator := backend.NewClient(cfg.Generation)
	app.AddShutdownHook(func(context.Context) error {
		return generator.Close()
	})

	return &Services{
		Config:     cfg,
		Clock:      clk,
		Store:      store,
		Session:    session,
		Flashcards: flashcards,
		Quizzes:    quizzes,
		Streak:     tracker,
		Dashboard:  dashboard.NewService(flashcards, quizzes, tracker, clk),
		Handoff:    handoff.New(session),
		Generator:  generator,
		Exporter:   studysheet.NewExporter(cfg.Templates.StudySheetTemplate, cfg.Outputs.StudySheetDirectory, stdout),
	}, nil
}

// OpenMedium opens the persistent medium selected by storage.Driver.
func OpenMedium(ctx context.Context, app *App, storage config.StorageConfig, db config.DatabaseConfig) (kvstore.Medium, error) {
	slog.Default().Debug("open storage medium",
		slog.String("driver", storage.Driver),
	)

	switch storage.Driver {
	case config.StorageDriverMemory:
		return kvstore.NewMemoryMedium(), nil
	case config.StorageDriverFile:
		return kvstore.NewYAMLFileMedium(storage.FilePath), nil
	case config.StorageDriverSQLite:
		conn, err := database.OpenSQLite(storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("database.OpenSQLite(%s) > %w", storage.SQLitePath, err)
		}
		app.AddShutdownHook(func(context.Context) error {
			return conn.Close()
		})
		medium := kvstore.NewSQLMedium(conn, kvstore.SQLiteDialect{})
		if err := medium.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate sqlite store: %w", err)
		}
		return medium, nil
	case config.StorageDriverMySQL:
		conn, err := database.Open(db)
		if err != nil {
			return nil, fmt.Errorf("database.Open() > %w", err)
		}
		app.AddShutdownHook(func(context.Context) error {
			return conn.Close()
		})
		medium := kvstore.NewSQLMedium(conn, kvstore.MySQLDialect{})
		if err := medium.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate mysql store: %w", err)
		}
		return medium, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", storage.Driver)
}

// OpenSessionMedium returns the medium for staging. Without a session file,
// staging lives only as long as the process.
func OpenSessionMedium(storage config.StorageConfig) kvstore.Medium {
	if storage.SessionFile == "" {
		return kvstore.NewMemoryMedium()
	}
	return kvstore.NewYAMLFileMedium(storage.SessionFile)
}
