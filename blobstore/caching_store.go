package blobstore

import (
	"context"
	"sync"

	"github.com/hupe1980/rcrd/internal/cache"
)

// CachingStore wraps a Store and keeps recently read blobs in an LRU.
// Writes and deletes go through to the inner store and invalidate the entry.
// A miss only fills the cache if no write completed while it was reading.
type CachingStore struct {
	inner Store
	cache *cache.LRU

	mu  sync.Mutex
	gen uint64
}

// NewCachingStore creates a new CachingStore.
func NewCachingStore(inner Store, c *cache.LRU) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: c,
	}
}

// Get serves name from the cache, falling back to the inner store.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if data, ok := s.cache.Get(name); ok {
		return data, nil
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gen == gen {
		s.cache.Set(name, data)
	}
	s.mu.Unlock()
	return data, nil
}

func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.cache.Remove(name)
	err := s.inner.Put(ctx, name, data)
	s.invalidate(name)
	return err
}

func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.cache.Remove(name)
	err := s.inner.Delete(ctx, name)
	s.invalidate(name)
	return err
}

func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	s.gen++
	s.cache.Remove(name)
	s.mu.Unlock()
}

func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns the cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}
