// Package cache is a file-backed key/value store with age-based expiry.
// Content is the raw response text, unparsed; the file mtime is the
// expiry clock, evaluated lazily at read time.
package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fijnedagvan/dagvan/internal/logger"
)

// Store reads and writes cache records under a single directory. The
// clock is injectable so tests can age records without sleeping.
type Store struct {
	dir string
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store rooted at dir, creating the directory if needed.
func New(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	s := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Write persists content under key, silently overwriting. Cache writes
// are best-effort: failures are logged and swallowed.
func (s *Store) Write(key string, content []byte) {
	path := s.path(key)
	if err := os.WriteFile(path, content, 0600); err != nil {
		logger.Error("cache: write failed", "key", key, "error", err)
		return
	}
	// Stamp the record with the store's clock so the injectable clock
	// controls both ends of the expiry computation.
	now := s.now()
	if err := os.Chtimes(path, now, now); err != nil {
		logger.Error("cache: failed to stamp record time", "key", key, "error", err)
	}
}

// Read returns the content stored under key if it exists and is no older
// than maxAge, along with the record's remaining life. Expiry is anchored
// to the write time, so remaining shrinks as the record ages. An expired
// record is deleted before reporting a miss, so stale entries do not
// linger on disk.
func (s *Store) Read(key string, maxAge time.Duration) ([]byte, time.Duration, bool) {
	path := s.path(key)
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, false
	}
	remaining := maxAge - s.now().Sub(info.ModTime())
	if remaining <= 0 {
		if err := os.Remove(path); err != nil {
			logger.Warn("cache: failed to delete expired record", "key", key, "error", err)
		}
		logger.Debug("cache: record expired", "key", key)
		return nil, 0, false
	}
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("cache: read failed", "key", key, "error", err)
		return nil, 0, false
	}
	return content, remaining, true
}

// Now exposes the store's clock so callers layering their own expiry on
// top of cache records stay on the same time source.
func (s *Store) Now() time.Time {
	return s.now()
}

// ReadRaw returns the content stored under key regardless of age. Used
// only for "last known good" fallback reads.
func (s *Store) ReadRaw(key string) ([]byte, bool) {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return content, true
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Key builders. Each distinct query gets its own key and therefore its
// own independent expiry lifecycle.

func AllKey() string             { return "all_dagen.json" }
func YearKey(year string) string { return "year_" + year + ".json" }
func DateKey(date string) string { return "date_" + date + ".json" }
func FunFactsKey() string        { return "funfacts.json" }
