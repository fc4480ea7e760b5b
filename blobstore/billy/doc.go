// Package billy exposes files of a go-billy filesystem as blobseek handles.
//
// Any billy.Filesystem works: osfs for a directory on disk, memfs for tests,
// or the worktree filesystem of a go-git repository.
//
//	store := billyblob.NewStore(osfs.New("/var/lib/images"))
//	blob, err := store.Open(ctx, "disk.img")
//	f := blobseek.New(blob)
package billy
