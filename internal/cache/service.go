package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Service wraps a Store with staleness and fallback semantics. The clock is
// injectable for tests.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a cache service on the given store
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock returns a copy of the service using the given clock
func (s *Service) WithClock(now func() time.Time) *Service {
	return &Service{store: s.store, now: now}
}

// Clear removes all cache entries unconditionally
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Invalidate removes the entry for one key
func (s *Service) Invalidate(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}

// Result represents the outcome of a cache lookup. Stale is set when an
// expired entry was served because recomputation failed.
type Result[T any] struct {
	Value     T
	FromCache bool
	Stale     bool
}

// GetOrCompute returns the cached value for key when it is younger than
// ttl. On a miss or an expired entry it runs compute: success overwrites
// the entry, failure falls back to the expired entry when one exists and
// propagates the error otherwise. Expired entries are never deleted here.
func GetOrCompute[T any](ctx context.Context, s *Service, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (Result[T], error) {
	entry, found, err := s.store.Get(ctx, key)
	if err != nil {
		// A broken store reads as a miss; compute decides the outcome.
		log.Printf("Cache read for %q failed: %v", key, err)
		found = false
	}

	if found && s.now().Sub(entry.StoredAt) <= ttl {
		var value T
		if err := json.Unmarshal(entry.Value, &value); err == nil {
			return Result[T]{Value: value, FromCache: true}, nil
		}
		log.Printf("Cache entry for %q is corrupt, recomputing", key)
	}

	value, computeErr := compute(ctx)
	if computeErr != nil {
		if found {
			var stale T
			if err := json.Unmarshal(entry.Value, &stale); err == nil {
				log.Printf("Serving stale cache entry for %q after compute failure: %v", key, computeErr)
				return Result[T]{Value: stale, FromCache: true, Stale: true}, nil
			}
		}
		return Result[T]{}, computeErr
	}

	if err := store(ctx, s, key, value); err != nil {
		log.Printf("Cache write for %q failed: %v", key, err)
	}
	return Result[T]{Value: value}, nil
}

// Refresh recomputes the value for key and overwrites the entry regardless
// of its age
func Refresh[T any](ctx context.Context, s *Service, key string, compute func(ctx context.Context) (T, error)) (T, error) {
	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := store(ctx, s, key, value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func store[T any](ctx context.Context, s *Service, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %q: %w", key, err)
	}
	return s.store.Set(ctx, key, Entry{StoredAt: s.now(), Value: raw})
}
