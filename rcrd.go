package rcrd

import (
	"context"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hupe1980/rcrd/blobstore"
	"github.com/hupe1980/rcrd/internal/cache"
	"github.com/hupe1980/rcrd/internal/resource"
	"github.com/hupe1980/rcrd/persistence"
	"github.com/hupe1980/rcrd/record"
	"golang.org/x/sync/errgroup"
)

// DB stores records by name in a blob store.
// It is safe for concurrent use.
type DB struct {
	store   blobstore.Store
	cached  *blobstore.CachingStore // nil without WithCache
	rc      *resource.Controller
	opts    options
	logger  *Logger
	metrics MetricsCollector
}

// Open returns a DB on top of store.
func Open(store blobstore.Store, optFns ...Option) (*DB, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	opts := applyOptions(optFns)

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   opts.memoryLimit,
		MaxWorkers:         int64(opts.concurrency),
		IOLimitBytesPerSec: opts.ioLimit,
	})

	db := &DB{
		store:   store,
		rc:      rc,
		opts:    opts,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
	if opts.cacheBytes > 0 {
		db.cached = blobstore.NewCachingStore(store, cache.NewLRU(opts.cacheBytes, rc))
		db.store = db.cached
	}
	if opts.prefix != "" {
		db.logger = db.logger.WithPrefix(opts.prefix)
	}
	return db, nil
}

func (db *DB) key(name string) (string, error) {
	if name == "" || strings.HasSuffix(name, "/") {
		return "", ErrInvalidName
	}
	return db.opts.prefix + name, nil
}

// Put encodes r and stores it under name, replacing any previous record.
func (db *DB) Put(ctx context.Context, name string, r *record.Record) error {
	start := time.Now()
	n, err := db.put(ctx, name, r)
	db.metrics.RecordPut(n, time.Since(start), err)
	db.logger.LogPut(ctx, name, n, err)
	return err
}

func (db *DB) put(ctx context.Context, name string, r *record.Record) (int, error) {
	if r == nil {
		return 0, ErrNilRecord
	}
	key, err := db.key(name)
	if err != nil {
		return 0, err
	}
	data, err := persistence.Encode(r, db.opts.codec, db.opts.compression)
	if err != nil {
		return 0, err
	}
	if err := db.rc.AcquireIO(ctx, len(data)); err != nil {
		return 0, err
	}
	if err := db.store.Put(ctx, key, data); err != nil {
		return 0, translateError(name, err)
	}
	return len(data), nil
}

// Get loads the record stored under name. A missing record yields an error
// satisfying errors.Is(err, ErrNotFound).
func (db *DB) Get(ctx context.Context, name string) (*record.Record, error) {
	start := time.Now()
	r, n, err := db.get(ctx, name)
	db.metrics.RecordGet(n, time.Since(start), err)
	db.logger.LogGet(ctx, name, n, err)
	return r, err
}

func (db *DB) get(ctx context.Context, name string) (*record.Record, int, error) {
	key, err := db.key(name)
	if err != nil {
		return nil, 0, err
	}
	data, err := db.store.Get(ctx, key)
	if err != nil {
		return nil, 0, translateError(name, err)
	}
	if err := db.rc.AcquireIO(ctx, len(data)); err != nil {
		return nil, 0, err
	}
	r, err := persistence.Decode(data)
	if err != nil {
		return nil, len(data), translateError(name, err)
	}
	return r, len(data), nil
}

// Delete removes the record stored under name. Deleting a missing record
// is not an error.
func (db *DB) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := db.delete(ctx, name)
	db.metrics.RecordDelete(time.Since(start), err)
	db.logger.LogDelete(ctx, name, err)
	return err
}

func (db *DB) delete(ctx context.Context, name string) error {
	key, err := db.key(name)
	if err != nil {
		return err
	}
	return translateError(name, db.store.Delete(ctx, key))
}

// List returns the sorted names of all records starting with prefix.
func (db *DB) List(ctx context.Context, prefix string) ([]string, error) {
	start := time.Now()
	names, err := db.list(ctx, prefix)
	db.metrics.RecordList(len(names), time.Since(start), err)
	db.logger.LogList(ctx, prefix, len(names), err)
	return names, err
}

func (db *DB) list(ctx context.Context, prefix string) ([]string, error) {
	keys, err := db.store.List(ctx, db.opts.prefix+prefix)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, db.opts.prefix))
	}
	slices.Sort(names)
	return names, nil
}

// PutMany stores every record in items, running up to the configured
// concurrency in parallel. The first failure cancels the remaining writes;
// records already written stay written.
func (db *DB) PutMany(ctx context.Context, items map[string]*record.Record) error {
	start := time.Now()
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	slices.Sort(names)

	var failed atomic.Int64
	err := db.fanOut(ctx, len(names), func(ctx context.Context, i int) error {
		if err := db.Put(ctx, names[i], items[names[i]]); err != nil {
			failed.Add(1)
			return err
		}
		return nil
	})

	db.metrics.RecordBatch("put", len(names), int(failed.Load()), time.Since(start))
	db.logger.LogBatch(ctx, "put", len(names), int(failed.Load()))
	return err
}

// GetMany loads the named records in parallel. The result is in the order of
// names. Any failure fails the whole call.
func (db *DB) GetMany(ctx context.Context, names []string) ([]*record.Record, error) {
	start := time.Now()
	out := make([]*record.Record, len(names))

	var failed atomic.Int64
	err := db.fanOut(ctx, len(names), func(ctx context.Context, i int) error {
		r, err := db.Get(ctx, names[i])
		if err != nil {
			failed.Add(1)
			return err
		}
		out[i] = r
		return nil
	})

	db.metrics.RecordBatch("get", len(names), int(failed.Load()), time.Since(start))
	db.logger.LogBatch(ctx, "get", len(names), int(failed.Load()))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fanOut runs fn for 0..n-1 under the worker limit.
func (db *DB) fanOut(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(db.rc.Workers())
	for i := range n {
		g.Go(func() error {
			if err := db.rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer db.rc.ReleaseWorker()
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

// Apply loads the record under name, passes it through fn and stores the
// result under the same name. Nothing is written if fn fails.
func (db *DB) Apply(ctx context.Context, name string, fn func(*record.Record) (*record.Record, error)) (*record.Record, error) {
	r, err := db.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	out, err := fn(r)
	if err != nil {
		return nil, err
	}
	if err := db.Put(ctx, name, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CacheStats returns the blob cache hit and miss counts, or zeros when the
// DB has no cache.
func (db *DB) CacheStats() (hits, misses int64) {
	if db.cached == nil {
		return 0, 0
	}
	return db.cached.Stats()
}
