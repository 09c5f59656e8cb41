// Package cache is a small in-process keyed store with idle expiry.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store keeps values until they go unused for the idle TTL. A TTL of zero
// keeps them forever. Expired entries are swept at most once per TTL, on insert.
type Store struct {
	mu        sync.Mutex
	entries   map[string]entry
	ttl       time.Duration
	nextSweep time.Time
	now       func() time.Time
	flight    singleflight.Group
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value for key and pushes its expiry forward.
func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.ttl > 0 {
		if !e.expiresAt.After(now) {
			delete(s.entries, key)
			return nil, false
		}
		e.expiresAt = now.Add(s.ttl)
		s.entries[key] = e
	}

	return e.value, true
}

func (s *Store) set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
		if !now.Before(s.nextSweep) {
			for k, old := range s.entries {
				if !old.expiresAt.After(now) {
					delete(s.entries, k)
				}
			}
			s.nextSweep = now.Add(s.ttl)
		}
	}
	s.entries[key] = e
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// GetOrLoad returns the stored value for key, calling loader once per key
// no matter how many callers miss at the same time.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.set(key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
