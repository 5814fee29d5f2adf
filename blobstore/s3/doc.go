// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("records/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	db, err := rcrd.Open(store)
//
// # Features
//
//   - CRC32C integrity checks on upload
//   - Multipart uploads for large blobs
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
