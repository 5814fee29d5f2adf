package rcrd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/rcrd/blobstore"
	"github.com/hupe1980/rcrd/codec"
	"github.com/hupe1980/rcrd/persistence"
	"github.com/hupe1980/rcrd/record"
	"github.com/hupe1980/rcrd/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func people(t *testing.T) *record.Record {
	t.Helper()
	r, err := record.New([]record.Field{
		{Name: "id", Vector: vector.Ints(1, 2, 3)},
		{Name: "name", Vector: vector.Strings("ada", "bob", "cy").WithMissing(2)},
	}, record.WithClass(record.NewClass("person")), record.WithAttr("source", "test"))
	require.NoError(t, err)
	return r
}

func TestOpen(t *testing.T) {
	_, err := Open(nil)
	require.ErrorIs(t, err, ErrNilStore)

	db, err := Open(blobstore.NewMemoryStore(), nil, WithLogger(nil), WithMetricsCollector(nil), WithConcurrency(-3))
	require.NoError(t, err)
	assert.Equal(t, 1, db.opts.concurrency)
	assert.Equal(t, codec.Default, db.opts.codec)
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		opts []Option
	}{
		{"defaults", nil},
		{"json lz4", []Option{WithCodec(codec.JSON{}), WithCompression(codec.CompressionLZ4)}},
		{"zstd prefix", []Option{WithCompression(codec.CompressionZSTD), WithPrefix("tenant/")}},
		{"cached", []Option{WithCache(1<<20, 0)}},
		{"throttled", []Option{WithIOLimit(1 << 30)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Open(blobstore.NewMemoryStore(), tt.opts...)
			require.NoError(t, err)

			r := people(t)
			require.NoError(t, db.Put(ctx, "people", r))

			got, err := db.Get(ctx, "people")
			require.NoError(t, err)
			assert.True(t, record.Equal(r, got), "got %s", got)

			require.NoError(t, db.Delete(ctx, "people"))
			_, err = db.Get(ctx, "people")
			require.ErrorIs(t, err, ErrNotFound)
			require.ErrorIs(t, err, blobstore.ErrNotFound)
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	ctx := context.Background()
	db, err := Open(blobstore.NewMemoryStore())
	require.NoError(t, err)

	require.ErrorIs(t, db.Put(ctx, "x", nil), ErrNilRecord)
	require.ErrorIs(t, db.Put(ctx, "", people(t)), ErrInvalidName)
	require.ErrorIs(t, db.Put(ctx, "dir/", people(t)), ErrInvalidName)
	_, err = db.Get(ctx, "")
	require.ErrorIs(t, err, ErrInvalidName)
	require.ErrorIs(t, db.Delete(ctx, ""), ErrInvalidName)
}

func TestCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	db, err := Open(store)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "bad", []byte("not a record blob")))

	_, err = db.Get(ctx, "bad")
	var corrupt *ErrCorruptRecord
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, "bad", corrupt.Name)
	assert.ErrorIs(t, err, persistence.ErrInvalidMagic)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "other/x", []byte("x")))

	db, err := Open(store, WithPrefix("app/"))
	require.NoError(t, err)

	for _, name := range []string{"people/b", "people/a", "places/rome"} {
		require.NoError(t, db.Put(ctx, name, people(t)))
	}

	names, err := db.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"people/a", "people/b", "places/rome"}, names)

	names, err = db.List(ctx, "people/")
	require.NoError(t, err)
	assert.Equal(t, []string{"people/a", "people/b"}, names)
}

func TestPutManyGetMany(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	db, err := Open(blobstore.NewMemoryStore(), WithConcurrency(4), WithMetricsCollector(metrics))
	require.NoError(t, err)

	items := map[string]*record.Record{}
	names := []string{"e", "d", "c", "b", "a"}
	for i, name := range names {
		r, err := record.New([]record.Field{{Name: "i", Vector: vector.Ints(int64(i))}})
		require.NoError(t, err)
		items[name] = r
	}
	require.NoError(t, db.PutMany(ctx, items))

	got, err := db.GetMany(ctx, names)
	require.NoError(t, err)
	require.Len(t, got, len(names))
	for i, name := range names {
		assert.True(t, record.Equal(items[name], got[i]), name)
	}

	_, err = db.GetMany(ctx, []string{"a", "missing"})
	require.ErrorIs(t, err, ErrNotFound)

	stats := metrics.GetStats()
	assert.Equal(t, int64(5), stats.PutCount)
	assert.Equal(t, int64(3), stats.BatchCount)
	assert.Equal(t, int64(12), stats.BatchItems)
	assert.GreaterOrEqual(t, stats.BatchFailed, int64(1))
	assert.Positive(t, stats.PutBytes)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	db, err := Open(blobstore.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, db.Put(ctx, "people", people(t)))

	out, err := db.Apply(ctx, "people", func(r *record.Record) (*record.Record, error) {
		return r.Resize(5)
	})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Len())

	got, err := db.Get(ctx, "people")
	require.NoError(t, err)
	assert.True(t, record.Equal(out, got))

	// A failing transform writes nothing.
	boom := errors.New("boom")
	_, err = db.Apply(ctx, "people", func(*record.Record) (*record.Record, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	got, err = db.Get(ctx, "people")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Len())

	_, err = db.Apply(ctx, "missing", func(r *record.Record) (*record.Record, error) { return r, nil })
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCacheStats(t *testing.T) {
	ctx := context.Background()

	db, err := Open(blobstore.NewMemoryStore())
	require.NoError(t, err)
	hits, misses := db.CacheStats()
	assert.Zero(t, hits+misses)

	db, err = Open(blobstore.NewMemoryStore(), WithCache(1<<20, 1<<20))
	require.NoError(t, err)
	require.NoError(t, db.Put(ctx, "p", people(t)))
	for range 3 {
		_, err := db.Get(ctx, "p")
		require.NoError(t, err)
	}
	hits, misses = db.CacheStats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(1), misses)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	db, err := Open(blobstore.NewMemoryStore(), WithLogger(logger), WithPrefix("p/"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, db.Put(ctx, "people", people(t)))
	_, err = db.Get(ctx, "missing")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"put completed"`)
	assert.Contains(t, out, `"msg":"get failed"`)
	assert.Contains(t, out, `"prefix":"p/"`)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError("x", nil))

	plain := errors.New("plain")
	assert.Equal(t, plain, translateError("x", plain))

	err := translateError("x", persistence.ErrChecksum)
	var corrupt *ErrCorruptRecord
	require.ErrorAs(t, err, &corrupt)
	assert.Contains(t, err.Error(), `"x"`)
}
