// Package services contains the domain logic: daily prediction selection,
// compatibility scoring, profile and notification management.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/ports"
)

// FallbackPrediction is returned when a sign cannot be resolved at all.
const FallbackPrediction = "Предсказание временно недоступно."

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// DailySelector produces one stable prediction per sign per calendar day.
//
// Stability: within one day every call returns the same text for the same
// sign, across process restarts (the assignment is persisted through the
// DailyCache port). Determinism: the assignment is a pure function of the
// day key and the catalog: two instances with identical content produce
// identical assignments. Uniqueness: distinct signs get distinct texts as
// long as the combined pools hold enough unique strings; running out
// degrades to a deterministic synthetic text, never an error.
type DailySelector struct {
	mu      sync.Mutex
	catalog *entities.Catalog
	cache   ports.DailyCache
	current *entities.DailyAssignment
	warmed  bool
}

// NewDailySelector creates a selector over the given catalog and durable
// cache. A nil or empty catalog is replaced by the built-in fallback
// content; cache may be nil, in which case assignments live only in memory.
func NewDailySelector(catalog *entities.Catalog, cache ports.DailyCache) *DailySelector {
	if catalog.Empty() {
		catalog = entities.FallbackCatalog()
	}
	return &DailySelector{
		catalog: catalog,
		cache:   cache,
	}
}

// TodayText returns the general prediction fixed for today for the given
// sign. It never fails: unknown signs get a fixed fallback sentence and
// cache I/O problems are treated as a cache miss.
func (s *DailySelector) TodayText(ctx context.Context, sign entities.Sign) string {
	if !sign.Valid() {
		return FallbackPrediction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assignment := s.ensureToday(ctx)
	if text, ok := assignment.Predictions[sign]; ok {
		return text
	}

	// Legacy or partial cache for today: fill in only the missing signs,
	// leaving already-assigned ones untouched.
	s.repairMissing(assignment)
	s.persist(ctx, assignment)
	return assignment.Predictions[sign]
}

// CategoryText returns today's prediction for a sign in a specific
// category. The general category goes through the daily assignment; other
// categories use a stable per-(sign, day, category) index into the content
// pools, which is deterministic and day-stable without caching.
func (s *DailySelector) CategoryText(ctx context.Context, sign entities.Sign, category entities.Category) string {
	if !sign.Valid() || !category.Valid() {
		return FallbackPrediction
	}
	if category == entities.CategoryGeneral {
		return s.TodayText(ctx, sign)
	}

	day := entities.DayKey(timeNow())
	key := fmt.Sprintf("%s|%s|%s", sign, day, category)

	if pool := s.catalog.PersonalPool(sign, category); len(pool) > 0 {
		return pool[stableIndex(key, len(pool))]
	}
	if pool := s.catalog.UniversalPool(category); len(pool) > 0 {
		return pool[stableIndex(key, len(pool))]
	}
	return syntheticPrediction(sign)
}

// TodayPrediction bundles today's texts for all categories for one sign.
func (s *DailySelector) TodayPrediction(ctx context.Context, sign entities.Sign) entities.DailyPrediction {
	texts := make(map[entities.Category]string, len(entities.AllCategories()))
	for _, category := range entities.AllCategories() {
		texts[category] = s.CategoryText(ctx, sign, category)
	}
	return entities.DailyPrediction{
		Sign:  sign,
		Date:  entities.DayKey(timeNow()),
		Texts: texts,
	}
}

// ensureToday returns the assignment for the current day, regenerating it
// when the date rolled over. Must be called with the mutex held.
func (s *DailySelector) ensureToday(ctx context.Context) *entities.DailyAssignment {
	day := entities.DayKey(timeNow())

	if !s.warmed {
		s.warmed = true
		if s.cache != nil {
			// A load failure is a cache miss, not an error.
			if stored, err := s.cache.Load(ctx); err == nil && stored != nil {
				s.current = stored
			}
		}
	}

	if s.current == nil || s.current.Date != day {
		// A day boundary invalidates the whole assignment, not
		// incrementally.
		s.current = s.generate(day)
		s.persist(ctx, s.current)
	}
	return s.current
}

// generate builds the full 12-sign assignment for a day key.
func (s *DailySelector) generate(day string) *entities.DailyAssignment {
	rng := rand.New(rand.NewSource(seedForDay(day)))

	universal := shuffled(rng, s.catalog.UniversalPool(entities.CategoryGeneral))

	// Per-sign candidate list: the sign's own shuffled pool first, the
	// shuffled universal pool as overflow.
	candidates := make(map[entities.Sign][]string, 12)
	for _, sign := range entities.AllSigns() {
		personal := shuffled(rng, s.catalog.PersonalPool(sign, entities.CategoryGeneral))
		candidates[sign] = append(personal, universal...)
	}

	assignment := entities.NewDailyAssignment(day)
	used := make(map[string]struct{})
	for _, sign := range entities.AllSigns() {
		for _, text := range candidates[sign] {
			if _, taken := used[text]; !taken {
				assignment.Predictions[sign] = text
				used[text] = struct{}{}
				break
			}
		}
		if _, ok := assignment.Predictions[sign]; !ok {
			assignment.Predictions[sign] = syntheticPrediction(sign)
		}
	}
	return assignment
}

// repairMissing fills in signs absent from an existing assignment using
// the universal pool under the same per-day seed. Assigned signs are left
// untouched.
func (s *DailySelector) repairMissing(assignment *entities.DailyAssignment) {
	rng := rand.New(rand.NewSource(seedForDay(assignment.Date)))
	universal := shuffled(rng, s.catalog.UniversalPool(entities.CategoryGeneral))

	used := make(map[string]struct{}, len(assignment.Predictions))
	for _, text := range assignment.Predictions {
		used[text] = struct{}{}
	}

	for _, sign := range entities.AllSigns() {
		if _, ok := assignment.Predictions[sign]; ok {
			continue
		}
		text := ""
		for _, candidate := range universal {
			if _, taken := used[candidate]; !taken {
				text = candidate
				break
			}
		}
		if text == "" {
			text = syntheticPrediction(sign)
		}
		assignment.Predictions[sign] = text
		used[text] = struct{}{}
	}
}

// persist writes the assignment through the cache port. Write failures are
// ignored: generation already succeeded in memory for this process.
func (s *DailySelector) persist(ctx context.Context, assignment *entities.DailyAssignment) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Save(ctx, assignment)
}

// seedForDay derives the deterministic per-day PRNG seed: the first 8
// bytes of sha256(dayKey). Hashing decouples the seed from the platform's
// default randomness (process start time, PID).
func seedForDay(day string) int64 {
	digest := sha256.Sum256([]byte(day))
	return int64(binary.BigEndian.Uint64(digest[:8]))
}

// stableIndex maps a key to an index in [0, modulo) via sha256, spreading
// keys evenly.
func stableIndex(key string, modulo int) int {
	digest := sha256.Sum256([]byte(key))
	value := binary.BigEndian.Uint64(digest[:8])
	return int(value % uint64(modulo))
}

// shuffled returns a seeded-shuffle copy of a pool.
func shuffled(rng *rand.Rand, pool []string) []string {
	out := append([]string(nil), pool...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// syntheticPrediction builds the deterministic last-resort text for a sign.
func syntheticPrediction(sign entities.Sign) string {
	return fmt.Sprintf("День приносит новые возможности для знака %s. Сохраняйте уверенность и спокойствие.", strings.ToLower(sign.String()))
}
