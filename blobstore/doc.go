// Package blobstore provides the storage abstraction behind meshkit's table I/O.
//
// A Store holds named, immutable blobs. Tables are written once through
// Create (streaming) or Put (atomic) and read back through Open.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local directory, mmap-backed reads
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type Store interface {
//	    Open(ctx, name) (Blob, error)
//	    Create(ctx, name) (WritableBlob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
