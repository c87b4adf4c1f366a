package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a process local TTL cache. A zero ttl keeps entries until they are deleted.
//
// generation counts deletes. A load that overlaps a delete returns its value to the caller
// but does not cache it.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	generation uint64
	ttl        time.Duration
	clock      clock.Clock
	flight     singleflight.Group
}

func NewStore(ttl time.Duration, clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.System()
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.clock.Now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = s.newEntry(value)
	s.mu.Unlock()
}

// setAt stores value only if no delete happened since generation was read.
func (s *Store) setAt(key string, value any, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == generation {
		s.entries[key] = s.newEntry(value)
	}
}

func (s *Store) newEntry(value any) entry {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.clock.Now().Add(s.ttl)
	}
	return entry{value: value, expiresAt: expiresAt}
}

func (s *Store) currentGeneration() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Store) Delete(_ context.Context, keys ...string) {
	s.mu.Lock()
	s.generation++
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	s.generation++
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key or runs loader once for all concurrent
// callers of the same key. Loader errors are not cached, and neither is a value whose
// load overlapped a Delete or DeletePrefix. Callers arriving after a delete never join
// a load that started before it.
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

	generation := s.currentGeneration()
	flightKey := key + "@" + strconv.FormatUint(generation, 10)
	value, err, _ := s.flight.Do(flightKey, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.setAt(key, loaded, generation)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
