package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/rcrd/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore runs the behavior every Store must share.
func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "people/ada", []byte("v1")))
	require.NoError(t, s.Put(ctx, "people/bob", []byte("bob")))
	require.NoError(t, s.Put(ctx, "places/rome", []byte("rome")))

	data, err := s.Get(ctx, "people/ada")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)

	// Overwrite
	require.NoError(t, s.Put(ctx, "people/ada", []byte("v2")))
	data, err = s.Get(ctx, "people/ada")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)

	names, err := s.List(ctx, "people/")
	require.NoError(t, err)
	assert.Equal(t, []string{"people/ada", "people/bob"}, names)

	names, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"people/ada", "people/bob", "places/rome"}, names)

	require.NoError(t, s.Delete(ctx, "people/bob"))
	require.NoError(t, s.Delete(ctx, "people/bob"))
	_, err = s.Get(ctx, "people/bob")
	require.ErrorIs(t, err, ErrNotFound)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Get(canceled, "people/ada")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesData(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, s.Put(ctx, "k", in))
	in[0] = 'x'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	assert.ErrorIs(t, s.Put(ctx, "", in), ErrInvalidName)
}

func TestLocalStore(t *testing.T) {
	testStore(t, NewLocalStore(t.TempDir()))
}

func TestLocalStore_Layout(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a/b/c.rcrd", []byte("x")))
	_, err := os.Stat(filepath.Join(dir, "a", "b", "c.rcrd"))
	require.NoError(t, err)
	assert.Equal(t, dir, s.Root())

	for _, name := range []string{"", "../escape", "/abs"} {
		assert.ErrorIs(t, s.Put(ctx, name, nil), ErrInvalidName, name)
	}
}

func TestLocalStore_MissingRoot(t *testing.T) {
	s := NewLocalStore(filepath.Join(t.TempDir(), "not-yet"))
	names, err := s.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCachingStore(t *testing.T) {
	inner := NewMemoryStore()
	s := NewCachingStore(inner, cache.NewLRU(1<<10, nil))
	testStore(t, s)
}

func TestCachingStore_ServesFromCache(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	s := NewCachingStore(inner, cache.NewLRU(1<<10, nil))

	require.NoError(t, s.Put(ctx, "k", []byte("v1")))
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)
	_, err = s.Get(ctx, "k")
	require.NoError(t, err)

	hits, misses := s.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)

	// Writes through the wrapper invalidate.
	require.NoError(t, s.Put(ctx, "k", []byte("v2")))
	data, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

// pausingStore blocks Get after the inner read until release is closed.
type pausingStore struct {
	Store
	read    chan struct{}
	release chan struct{}
}

func (p *pausingStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := p.Store.Get(ctx, name)
	close(p.read)
	<-p.release
	return data, err
}

func TestCachingStore_WriteDuringMiss(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	require.NoError(t, mem.Put(ctx, "k", []byte("old")))

	inner := &pausingStore{Store: mem, read: make(chan struct{}), release: make(chan struct{})}
	s := NewCachingStore(inner, cache.NewLRU(1<<10, nil))

	done := make(chan []byte)
	go func() {
		data, err := s.Get(ctx, "k")
		assert.NoError(t, err)
		done <- data
	}()

	<-inner.read
	require.NoError(t, s.Put(ctx, "k", []byte("new")))
	close(inner.release)
	assert.Equal(t, []byte("old"), <-done)

	// The stale read must not have been cached.
	inner.read = make(chan struct{})
	inner.release = make(chan struct{})
	close(inner.release)
	data, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}
