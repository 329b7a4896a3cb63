// Package cache provides a TTL-based key-value cache with a serve-stale-on-
// error fallback policy for derived price data.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Entry represents one cached value. Entries are kept past their TTL so
// they can be served as a fallback when a refresh fails; they are only
// removed by an operator-triggered clear.
type Entry struct {
	StoredAt time.Time       `json:"stored_at"`
	Value    json.RawMessage `json:"value"`
}

// Store is the storage backend behind the cache service. Implementations
// are last-write-wins; concurrent writers for the same key are safe, the
// later write simply wins.
type Store interface {
	// Get returns the entry for key and whether one exists
	Get(ctx context.Context, key string) (Entry, bool, error)
	// Set stores the entry for key, overwriting any previous entry
	Set(ctx context.Context, key string, entry Entry) error
	// Delete removes the entry for key
	Delete(ctx context.Context, key string) error
	// Clear removes all entries
	Clear(ctx context.Context) error
}

// Key builds a cache key from a dataset name and every parameter the cached
// value depends on. Omitting a varying parameter from the key silently
// serves results for the wrong parameters, so callers must pass all of them.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
