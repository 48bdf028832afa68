// Package cache provides the key-value cache capability injected into
// enrichment collaborators. Callers receive a Cache port; nothing in
// the engine holds a global cache singleton.
package cache

import "time"

// Cache is a byte-value store with per-entry TTL.
type Cache interface {
	// Get retrieves a value. The bool reports whether a live entry exists.
	Get(key string) ([]byte, bool)
	// Set stores a value; ttl <= 0 uses the implementation default.
	Set(key string, value []byte, ttl time.Duration)
	// InvalidatePrefix drops every entry whose key starts with prefix
	// and returns how many were removed.
	InvalidatePrefix(prefix string) int
}
