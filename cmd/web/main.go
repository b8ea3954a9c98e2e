package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/e2etest"
	"github.com/jsalmi/liftline/internal/envstruct"
	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/flightrecorder"
	"github.com/jsalmi/liftline/internal/logging"
	"github.com/jsalmi/liftline/internal/program"
	"github.com/jsalmi/liftline/internal/sqlite"
	"github.com/jsalmi/liftline/internal/workout"
)

type application struct {
	logger         *slog.Logger
	db             *sqlite.Database
	sessionManager *scs.SessionManager
	workoutService *workout.Service
	programService *program.Service
	catalogService *catalog.Service
	generator      *catalog.Generator
	recorder       *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"LIFTLINE_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"LIFTLINE_SQLITE_URL" envDefault:"./liftline.sqlite3"`
	// ExerciseDBAPIKey enables the external exercise catalog. Empty falls back to the built-in catalog.
	ExerciseDBAPIKey string `env:"LIFTLINE_EXERCISEDB_API_KEY" envDefault:""`
	// OpenAIAPIKey enables AI classification of custom exercises.
	OpenAIAPIKey string `env:"LIFTLINE_OPENAI_API_KEY" envDefault:""`
	// TracesDir enables runtime trace capture on request timeouts. Empty disables it.
	TracesDir string `env:"LIFTLINE_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db", slog.String(e2etest.LogDsnKey, cfg.SqliteURL))

	catalogService := catalog.NewService(logger, catalog.NewClient(logger, nil, cfg.ExerciseDBAPIKey))
	catalogService.Warm(ctx)

	var recorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if recorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "create flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
	}

	app := application{
		logger:         logger,
		db:             db,
		sessionManager: initializeSessionManager(db),
		workoutService: workout.NewService(db, logger, catalogService),
		programService: program.NewService(db, logger, catalogService),
		catalogService: catalogService,
		generator:      catalog.NewGenerator(logger, cfg.OpenAIAPIKey),
		recorder:       recorder,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
