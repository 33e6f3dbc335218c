package bundle

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/dmitrymomot/localize/pkg/logger"
)

// DefaultFallback is the language substituted when a requested bundle
// cannot be loaded.
const DefaultFallback = "en"

// Store loads and caches one Bundle per language code.
//
// The cache is process-wide and never evicts: entries live for the store's
// lifetime and are only ever replaced wholesale by a fresh load. Load never
// returns an error; failures degrade to the fallback language's bundle and,
// if the fallback itself fails, to an empty bundle whose lookups echo their
// keys. Concurrent loads for the same code are not deduplicated: both
// fetch and the identical results make the double write harmless.
type Store struct {
	loader   Loader
	log      *slog.Logger
	fallback string

	mu    sync.RWMutex
	cache map[string]Bundle
}

// StoreOption configures the Store.
type StoreOption func(*Store)

// WithFallback sets the fallback language code. Default: "en".
func WithFallback(code string) StoreOption {
	return func(s *Store) {
		if code != "" {
			s.fallback = code
		}
	}
}

// WithLogger sets the logger used for load warnings.
func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates a Store around the given loader.
func NewStore(loader Loader, opts ...StoreOption) *Store {
	if loader == nil {
		panic("bundle: loader is not provided")
	}
	s := &Store{
		loader:   loader,
		log:      logger.NewNope(),
		fallback: DefaultFallback,
		cache:    make(map[string]Bundle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the bundle for code, fetching and caching it on first use.
//
// A cache hit performs no external access. On a load failure the store logs
// a warning and falls back to the fallback language's bundle; the failed
// code's cache slot stays empty so a later call retries the fetch. When the
// fallback language itself fails to load, Load returns an empty Bundle,
// the terminal degradation path, never an error.
func (s *Store) Load(ctx context.Context, code string) Bundle {
	if b, ok := s.Cached(code); ok {
		return b
	}

	b, err := s.loader.Load(ctx, code)
	if err != nil {
		s.log.WarnContext(ctx, "failed to load translation bundle",
			slog.String("lang", code),
			slog.String("error", err.Error()),
		)
		if code != s.fallback {
			return s.Load(ctx, s.fallback)
		}
		return Bundle{}
	}
	if b == nil {
		b = Bundle{}
	}

	s.mu.Lock()
	s.cache[code] = b
	s.mu.Unlock()

	return b
}

// Cached returns the cached bundle for code without triggering a load.
func (s *Store) Cached(code string) (Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.cache[code]
	return b, ok
}

// Languages returns the codes currently present in the cache, sorted.
func (s *Store) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.cache))
	for code := range s.cache {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Fallback returns the fallback language code.
func (s *Store) Fallback() string {
	return s.fallback
}

// replace swaps the cache entry for code. Used by the refresher, which
// fetches fresh bundles outside the Load path.
func (s *Store) replace(code string, b Bundle) {
	s.mu.Lock()
	s.cache[code] = b
	s.mu.Unlock()
}
