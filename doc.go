// Package rcrd stores record vectors by name.
//
// A record is a vector whose elements are rows of named, equal-length
// fields (see package record). The root package adds persistence on top:
// records are encoded into self-describing blobs (package persistence) and
// kept in any blobstore.Store.
//
// # Quick Start
//
//	db, _ := rcrd.Open(blobstore.NewLocalStore("./data"))
//
//	r, _ := record.New([]record.Field{
//	    {Name: "id", Vector: vector.Ints(1, 2, 3)},
//	    {Name: "name", Vector: vector.Strings("ada", "bob", "cy")},
//	})
//	_ = db.Put(ctx, "people", r)
//
//	got, _ := db.Get(ctx, "people")
//	first, _ := got.Slice(vector.At(0))
//
// Cloud mode:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("records/"))
//	db, _ := rcrd.Open(store, rcrd.WithCompression(codec.CompressionZSTD))
//
// # Bulk Operations
//
// PutMany and GetMany fan out over the store with bounded parallelism
// (WithConcurrency) and optional IO throttling (WithIOLimit):
//
//	db, _ := rcrd.Open(store, rcrd.WithConcurrency(8), rcrd.WithIOLimit(50<<20))
//	_ = db.PutMany(ctx, map[string]*record.Record{"a": ra, "b": rb})
//	rs, _ := db.GetMany(ctx, []string{"a", "b"})
//
// # Read-Modify-Write
//
//	db.Apply(ctx, "people", func(r *record.Record) (*record.Record, error) {
//	    return r.Resize(10)
//	})
//
// # Observability
//
// WithLogger plugs in a slog-based Logger; WithMetricsCollector receives
// per-operation timings.
package rcrd
