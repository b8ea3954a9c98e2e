package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsalmi/liftline/internal/errors"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when an exercise ID is not in the pool.
var ErrNotFound = errors.NewSentinel("exercise not found")

// CacheTTL keeps fetched exercises under the API's one hour storage limit.
const CacheTTL = 55 * time.Minute

const poolCacheKey = "exercise-pool"

// Service resolves the exercise pool used everywhere else: the ExerciseDB
// catalog when it is configured and healthy, the built-in catalog otherwise.
type Service struct {
	client *Client
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewService constructs a catalog service.
func NewService(logger *slog.Logger, client *Client) *Service {
	return &Service{
		client: client,
		cache:  gocache.New(CacheTTL, 10*time.Minute),
		logger: logger,
	}
}

// minUsablePool guards against a half-broken API response. A pool smaller
// than this cannot cover a full training split, so the built-in catalog wins.
const minUsablePool = 20

// Pool returns the merged exercise pool. API entries take precedence over
// built-in entries with the same ID; built-ins missing from the API are
// appended so the progression graph targets stay resolvable.
func (s *Service) Pool(ctx context.Context) []Exercise {
	if cached, ok := s.cache.Get(poolCacheKey); ok {
		return cached.([]Exercise)
	}

	if !s.client.Configured() {
		return Builtin()
	}

	fetched, err := s.client.FetchAll(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "exercisedb fetch failed, using built-in catalog",
			slog.String("error", err.Error()))
		return Builtin()
	}
	if len(fetched) < minUsablePool {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "exercisedb pool too small, using built-in catalog",
			slog.Int("count", len(fetched)))
		return Builtin()
	}

	apiIDs := make(map[string]bool, len(fetched))
	for _, ex := range fetched {
		apiIDs[ex.ID] = true
	}
	pool := fetched
	for _, ex := range Builtin() {
		if !apiIDs[ex.ID] {
			pool = append(pool, ex)
		}
	}

	s.cache.Set(poolCacheKey, pool, gocache.DefaultExpiration)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "exercise pool refreshed",
		slog.Int("api_count", len(fetched)),
		slog.Int("pool_count", len(pool)))
	return pool
}

// Get looks up a single exercise by ID.
func (s *Service) Get(ctx context.Context, id string) (Exercise, error) {
	for _, ex := range s.Pool(ctx) {
		if ex.ID == id {
			return ex, nil
		}
	}
	return Exercise{}, fmt.Errorf("exercise %q: %w", id, ErrNotFound)
}

// Search filters the pool by a free-text query matching name, muscle group,
// or equipment. An empty query returns the whole pool.
func (s *Service) Search(ctx context.Context, query string) []Exercise {
	pool := s.Pool(ctx)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return pool
	}
	var matches []Exercise
	for _, ex := range pool {
		if exerciseMatches(ex, q) {
			matches = append(matches, ex)
		}
	}
	return matches
}

func exerciseMatches(ex Exercise, q string) bool {
	if strings.Contains(strings.ToLower(ex.Name), q) {
		return true
	}
	for _, mg := range ex.MuscleGroups {
		if strings.Contains(strings.ToLower(mg), q) {
			return true
		}
	}
	for _, eq := range ex.Equipment {
		if strings.Contains(strings.ToLower(eq), q) {
			return true
		}
	}
	return false
}

// Filtered returns pool entries usable with the given equipment and hitting
// at least one of the given muscle groups. Nil filters match everything.
func (s *Service) Filtered(ctx context.Context, equipment, muscles []string) []Exercise {
	var matches []Exercise
	for _, ex := range s.Pool(ctx) {
		if equipment != nil && !ex.UsesAnyEquipment(equipment) {
			continue
		}
		if muscles != nil && !ex.TargetsAny(muscles) {
			continue
		}
		matches = append(matches, ex)
	}
	return matches
}

// Warm prefetches the exercise pool and the API taxonomy lists concurrently.
// Failures are logged but not returned since the built-in fallback covers
// every caller.
func (s *Service) Warm(ctx context.Context) {
	if !s.client.Configured() {
		return
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Pool(ctx)
		return nil
	})
	g.Go(func() error {
		if _, err := s.client.FetchEquipment(ctx); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelDebug, "equipment list prefetch failed",
				slog.String("error", err.Error()))
		}
		return nil
	})
	g.Go(func() error {
		if _, err := s.client.FetchBodyParts(ctx); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelDebug, "body part list prefetch failed",
				slog.String("error", err.Error()))
		}
		return nil
	})
	_ = g.Wait()
}
