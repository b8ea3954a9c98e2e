package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/contexthelpers"
	"github.com/jsalmi/liftline/internal/envstruct"
	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/logging"
	"github.com/jsalmi/liftline/internal/program"
	"github.com/jsalmi/liftline/internal/sqlite"
)

// localUserID is the fixture user; the terminal wizard serves one local user.
const localUserID = 1

type config struct {
	// SqliteURL is the URL to the SQLite database shared with the web server.
	SqliteURL string `env:"LIFTLINE_SQLITE_URL" envDefault:"./liftline.sqlite3"`
	// ExerciseDBAPIKey enables the external exercise catalog. Empty falls back to the built-in catalog.
	ExerciseDBAPIKey string `env:"LIFTLINE_EXERCISEDB_API_KEY" envDefault:""`
	// LogPath receives structured logs; the terminal itself belongs to the UI.
	LogPath string `env:"LIFTLINE_WIZARD_LOG" envDefault:""`
}

func run(ctx context.Context, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	logSink := os.Stderr
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		defer func() {
			_ = f.Close()
		}()
		logSink = f
	}
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}

	catalogService := catalog.NewService(logger, catalog.NewClient(logger, nil, cfg.ExerciseDBAPIKey))
	programService := program.NewService(db, logger, catalogService)

	ctx = context.WithValue(ctx, contexthelpers.AuthenticatedUserIDContextKey, localUserID)
	model := newModel(ctx, programService)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}

func main() {
	if err := run(context.Background(), os.LookupEnv); err != nil {
		_, _ = os.Stderr.WriteString("liftline-wizard: " + err.Error() + "\n")
		os.Exit(1)
	}
}
