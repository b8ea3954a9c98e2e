package program

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/sqlite"
)

// Service handles program generation and persistence.
type Service struct {
	repo    *sqliteProgramRepository
	catalog *catalog.Service
	logger  *slog.Logger
}

// NewService creates a new program service.
func NewService(db *sqlite.Database, logger *slog.Logger, catalogService *catalog.Service) *Service {
	return &Service{
		repo:    newSQLiteProgramRepository(db, logger),
		catalog: catalogService,
		logger:  logger,
	}
}

// Generate builds a program from wizard answers without saving it.
func (s *Service) Generate(ctx context.Context, answers WizardAnswers) (Program, error) {
	pool := s.catalog.Pool(ctx)
	generated, err := Generate(pool, answers)
	if err != nil {
		return Program{}, fmt.Errorf("generate program: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "program generated",
		slog.String("name", generated.Name),
		slog.Int("days", len(generated.Days)))
	return generated, nil
}

// Save persists a program and returns its ID.
func (s *Service) Save(ctx context.Context, prog Program) (int64, error) {
	if len(prog.Days) == 0 {
		return 0, fmt.Errorf("program has no days")
	}
	NormalizeProgram(&prog)
	id, err := s.repo.Create(ctx, prog)
	if err != nil {
		return 0, fmt.Errorf("save program: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "program saved",
		slog.Int64("program_id", id),
		slog.String("name", prog.Name))
	return id, nil
}

// Programs lists the user's saved programs newest first.
func (s *Service) Programs(ctx context.Context) ([]Program, error) {
	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// Program retrieves one saved program.
func (s *Service) Program(ctx context.Context, id int64) (Program, error) {
	prog, err := s.repo.Get(ctx, id)
	if err != nil {
		return Program{}, fmt.Errorf("get program %d: %w", id, err)
	}
	return prog, nil
}

// Delete removes a saved program.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete program %d: %w", id, err)
	}
	return nil
}

// Activate marks a program as the user's active one.
func (s *Service) Activate(ctx context.Context, id int64) error {
	if err := s.repo.SetActive(ctx, id); err != nil {
		return fmt.Errorf("activate program %d: %w", id, err)
	}
	return nil
}

// ActiveTargets returns the rep targets of the active program's named day,
// for reviewing a finished workout against its plan. A nil result means no
// active program or no such day.
func (s *Service) ActiveTargets(ctx context.Context, dayName string) ([]Prescription, error) {
	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	for _, prog := range programs {
		if !prog.Active {
			continue
		}
		for _, day := range prog.Days {
			if day.Name == dayName {
				return day.Exercises, nil
			}
		}
	}
	return nil, nil
}
