package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/envstruct"
	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/logging"
	"github.com/jsalmi/liftline/internal/mcp"
	"github.com/jsalmi/liftline/internal/program"
	"github.com/jsalmi/liftline/internal/sqlite"
	"github.com/jsalmi/liftline/internal/workout"
	"github.com/mark3labs/mcp-go/server"
)

const version = "1.0.0"

type config struct {
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"LIFTLINE_SQLITE_URL" envDefault:"./liftline.sqlite3"`
	// ExerciseDBAPIKey enables the external exercise catalog. Empty falls back to the built-in catalog.
	ExerciseDBAPIKey string `env:"LIFTLINE_EXERCISEDB_API_KEY" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	catalogService := catalog.NewService(logger, catalog.NewClient(logger, nil, cfg.ExerciseDBAPIKey))
	s := mcp.New(
		workout.NewService(db, logger, catalogService),
		program.NewService(db, logger, catalogService),
		catalogService,
		version,
		logger,
	)

	// The stdio transport owns stdout; logs go to stderr.
	if err := server.ServeStdio(s); err != nil {
		return errors.Wrap(err, "serve stdio")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelInfo,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
