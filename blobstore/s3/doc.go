// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// Every Slice on an opened blob becomes one ranged GetObject request, so a
// blobseek.File over an S3 object reads exactly the bytes it is asked for.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("images/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	blob, err := store.Open(ctx, "disk.img")
//	defer blob.Close()
//	f := blobseek.New(blob)
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints for LocalStack and other S3-compatible servers
package s3
