// Package minio provides a blobstore.Store backed by MinIO or any other
// S3-compatible object storage (Ceph, Garage, SeaweedFS).
//
//	store, err := minioblob.Dial(ctx, "localhost:9000", "datasets",
//	    minioblob.WithCredentials("minioadmin", "minioadmin"),
//	    minioblob.WithPrefix("runs/"),
//	)
//	kit := meshkit.New(meshkit.WithStore(store))
//
// Dial creates the bucket when it does not exist yet. Use NewStore to wrap
// an already configured *minio.Client.
package minio
