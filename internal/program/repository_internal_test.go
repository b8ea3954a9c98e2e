package program

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/contexthelpers"
	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/sqlite"
	"github.com/jsalmi/liftline/internal/testhelpers"
)

func newTestRepository(t *testing.T) (*sqliteProgramRepository, context.Context) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		_ = db.Close()
	})

	ctx = context.WithValue(ctx, contexthelpers.AuthenticatedUserIDContextKey, 1)
	return newSQLiteProgramRepository(db, logger), ctx
}

func generateTestProgram(t *testing.T) Program {
	t.Helper()

	preset, ok := catalog.PresetByKey("homeBasic")
	if !ok {
		t.Fatal("homeBasic preset missing")
	}
	generated, err := Generate(catalog.Builtin(), WizardAnswers{
		Goal:          GoalGeneral,
		Experience:    catalog.DifficultyBeginner,
		DaysPerWeek:   3,
		SessionLength: SessionShort,
		Equipment:     preset.Equipment,
		Split:         SplitAuto,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return generated
}

func TestProgramRepository_roundTrip(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	generated := generateTestProgram(t)

	id, err := repo.Create(ctx, generated)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if got.Name != generated.Name || got.Goal != generated.Goal ||
		got.Split != generated.Split || got.DaysPerWeek != generated.DaysPerWeek {
		t.Errorf("header mismatch: got %+v", got)
	}
	if diff := cmp.Diff(generated.Days, got.Days); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}
}

func TestProgramRepository_listNewestFirst(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	generated := generateTestProgram(t)

	var ids []int64
	for range 3 {
		id, err := repo.Create(ctx, generated)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, id)
	}

	programs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(programs) != 3 {
		t.Fatalf("len = %d, want 3", len(programs))
	}
	for i, prog := range programs {
		if want := ids[len(ids)-1-i]; prog.ID != want {
			t.Errorf("programs[%d].ID = %d, want %d", i, prog.ID, want)
		}
	}
}

func TestProgramRepository_setActive(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	generated := generateTestProgram(t)

	first, err := repo.Create(ctx, generated)
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := repo.Create(ctx, generated)
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	if err = repo.SetActive(ctx, first); err != nil {
		t.Fatalf("SetActive first: %v", err)
	}
	if err = repo.SetActive(ctx, second); err != nil {
		t.Fatalf("SetActive second: %v", err)
	}

	programs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	activeCount := 0
	for _, prog := range programs {
		if prog.Active {
			activeCount++
			if prog.ID != second {
				t.Errorf("active program = %d, want %d", prog.ID, second)
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("active programs = %d, want exactly 1", activeCount)
	}

	if err = repo.SetActive(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetActive missing: %v, want ErrNotFound", err)
	}
}

func TestProgramRepository_delete(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	generated := generateTestProgram(t)

	id, err := repo.Create(ctx, generated)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err = repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err = repo.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: %v, want ErrNotFound", err)
	}
	if err = repo.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: %v, want ErrNotFound", err)
	}
}

func TestProgramRepository_scopedToUser(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	generated := generateTestProgram(t)

	if _, err := repo.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO users (id, username) VALUES (2, 'other')`); err != nil {
		t.Fatalf("insert second user: %v", err)
	}

	id, err := repo.Create(ctx, generated)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	otherCtx := context.WithValue(ctx, contexthelpers.AuthenticatedUserIDContextKey, 2)
	if _, err = repo.Get(otherCtx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get as other user: %v, want ErrNotFound", err)
	}
	programs, err := repo.List(otherCtx)
	if err != nil {
		t.Fatalf("List as other user: %v", err)
	}
	if len(programs) != 0 {
		t.Errorf("other user sees %d programs, want 0", len(programs))
	}
}
