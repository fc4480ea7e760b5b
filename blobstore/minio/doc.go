// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// It works against MinIO and other S3-compatible servers (Ceph, SeaweedFS,
// Garage) without any AWS dependency. Each Slice on an opened blob is a single
// ranged GetObject.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "images/")
//	blob, err := store.Open(ctx, "disk.img")
//	f := blobseek.New(blob)
package minio
