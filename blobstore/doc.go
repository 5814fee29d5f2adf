// Package blobstore abstracts where encoded records live.
//
// A Store maps slash-separated names to immutable byte blobs. Implementations
// must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and scratch work
//   - LocalStore: local filesystem with atomic replace-on-write
//   - CachingStore: read-through LRU in front of any Store
//   - minio.Store: MinIO and other S3-compatible services
//   - s3.Store: Amazon S3
//
// # Custom Implementations
//
//	type Store interface {
//	    Get(ctx, name) ([]byte, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Get on a missing blob returns an error satisfying errors.Is(err, ErrNotFound).
// Delete on a missing blob is not an error.
package blobstore
