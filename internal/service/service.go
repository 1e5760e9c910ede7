// Package service orchestrates cache-or-network retrieval of day data.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/fijnedagvan/dagvan/internal/api"
	"github.com/fijnedagvan/dagvan/internal/cache"
	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/logger"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/parser"
)

// Service is the read-through layer between callers and the remote feed.
// File cache misses fall through to the network and write back; parsed
// results are additionally memoized in memory so repeated reads within a
// process do not re-parse the same file.
type Service struct {
	api   *api.Client
	cache *cache.Store
	mem   *gocache.Cache
}

// New constructs a Service over the given client and file cache.
func New(client *api.Client, store *cache.Store) *Service {
	return &Service{
		api:   client,
		cache: store,
		mem:   gocache.New(constants.ShortMaxAge, 10*time.Minute),
	}
}

// All returns the full dataset, cached for the long expiry class.
// Network failures collapse into an empty result.
func (s *Service) All(ctx context.Context) []models.Day {
	return s.readThrough(ctx, cache.AllKey(), constants.LongMaxAge, s.api.FetchAll)
}

// ForYear returns the days of one year, cached for the long expiry class.
func (s *Service) ForYear(ctx context.Context, year string) []models.Day {
	return s.readThrough(ctx, cache.YearKey(year), constants.LongMaxAge, func(ctx context.Context) ([]byte, error) {
		return s.api.FetchYear(ctx, year)
	})
}

// ForDate returns the days of one date. Single-date data changes more
// often operationally (corrections), so it uses the short expiry class.
func (s *Service) ForDate(ctx context.Context, date string) []models.Day {
	return s.readThrough(ctx, cache.DateKey(date), constants.ShortMaxAge, func(ctx context.Context) ([]byte, error) {
		return s.api.FetchDate(ctx, date)
	})
}

// memoEntry pins a memoized result to the file record's expiry instant.
// The memo must never outlive the record it was parsed from, so the TTL
// is the record's remaining life at read time, not a fresh full class.
type memoEntry struct {
	days      []models.Day
	expiresAt time.Time
}

func (s *Service) readThrough(ctx context.Context, key string, maxAge time.Duration, fetch func(context.Context) ([]byte, error)) []models.Day {
	if v, ok := s.mem.Get(key); ok {
		if e := v.(memoEntry); s.cache.Now().Before(e.expiresAt) {
			return e.days
		}
		s.mem.Delete(key)
	}

	if raw, remaining, ok := s.cache.Read(key, maxAge); ok {
		days := parser.Days(raw)
		s.memoize(key, days, remaining)
		return days
	}

	logger.Debug("service: cache miss, fetching from network", "key", key)
	raw, err := fetch(ctx)
	if err != nil {
		// Read-through paths recover network failure as "no data".
		logger.Error("service: network fetch failed", "key", key, "error", err)
		return nil
	}

	// Empty-but-valid responses are cached too, so a day without any
	// entries does not hammer the network.
	s.cache.Write(key, raw)
	days := parser.Days(raw)
	s.memoize(key, days, maxAge)
	return days
}

func (s *Service) memoize(key string, days []models.Day, ttl time.Duration) {
	s.mem.Set(key, memoEntry{days: days, expiresAt: s.cache.Now().Add(ttl)}, ttl)
}

// Refresh bypasses the cache read, fetches the date from the network and
// rewrites the cache. Unlike the read-through paths it fails loudly so
// the daily job can detect the failure and retry later.
func (s *Service) Refresh(ctx context.Context, date string) error {
	raw, err := s.api.FetchDate(ctx, date)
	if err != nil {
		return fmt.Errorf("forced refresh for %s failed: %w", date, err)
	}
	key := cache.DateKey(date)
	s.cache.Write(key, raw)
	s.memoize(key, parser.Days(raw), constants.ShortMaxAge)
	logger.Debug("service: forced refresh complete", "date", date)
	return nil
}

// RefreshFunFacts refetches the fun-fact pool, failing loudly like Refresh.
func (s *Service) RefreshFunFacts(ctx context.Context) error {
	raw, err := s.api.FetchFunFacts(ctx)
	if err != nil {
		return fmt.Errorf("fun fact refresh failed: %w", err)
	}
	s.cache.Write(cache.FunFactsKey(), raw)
	s.mem.Delete(cache.FunFactsKey())
	return nil
}

// LastKnownGood reads the cached data for a date ignoring expiry. It is
// the fallback when Refresh has failed and the caller still needs
// something to reason about.
func (s *Service) LastKnownGood(date string) []models.Day {
	raw, ok := s.cache.ReadRaw(cache.DateKey(date))
	if !ok {
		logger.Warn("service: no last-known-good cache for date", "date", date)
		return nil
	}
	return parser.Days(raw)
}

// RandomFunFact picks a random entry from the cached fun-fact pool.
// It reads only locally; the pool is refreshed by the daily job.
func (s *Service) RandomFunFact() (models.FunFact, bool) {
	raw, _, ok := s.cache.Read(cache.FunFactsKey(), constants.LongMaxAge)
	if !ok {
		return models.FunFact{}, false
	}
	facts := parser.FunFacts(raw)
	if len(facts) == 0 {
		return models.FunFact{}, false
	}
	return facts[rand.Intn(len(facts))], true
}

// FetchImage exposes best-effort image downloads to notification senders.
func (s *Service) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return s.api.FetchImage(ctx, url)
}
