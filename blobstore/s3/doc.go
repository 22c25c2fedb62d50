// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("runs/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	kit := meshkit.New(meshkit.WithStore(store))
//	x, y, err := kit.LoadXY(ctx, "positions.dat.zst")
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart uploads for large tables
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
