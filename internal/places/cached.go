package places

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/cache"
	"github.com/alexanderramin/itinera/internal/contract"
)

// CachedSearcher decorates a Searcher with the injected cache port.
// Results are memoized per (query, limit) for the configured TTL.
type CachedSearcher struct {
	inner Searcher
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedSearcher wraps inner with kv-caching. ttl <= 0 defers to the
// cache's default.
func NewCachedSearcher(inner Searcher, kv cache.Cache, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{inner: inner, cache: kv, ttl: ttl}
}

func (s *CachedSearcher) Search(ctx context.Context, query string, limit int) ([]contract.PlaceCandidate, error) {
	key := fmt.Sprintf("places:search:%d:%s", limit, query)

	if raw, ok := s.cache.Get(key); ok {
		var cached []contract.PlaceCandidate
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Corrupt entry: fall through to the inner searcher.
	}

	results, err := s.inner.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(results); err == nil {
		s.cache.Set(key, raw, s.ttl)
	}
	return results, nil
}

// Invalidate drops all memoized search results, e.g. after a favorite
// is added or removed.
func (s *CachedSearcher) Invalidate() {
	s.cache.InvalidatePrefix("places:search:")
}
