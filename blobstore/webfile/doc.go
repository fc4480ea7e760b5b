// Package webfile exposes a browser File (or Blob) as a blobseek handle.
//
// It only builds for js/wasm and must run inside a Web Worker, the only
// context where FileReaderSync exists.
//
//	reader, err := webfile.NewSyncReader()
//	if err != nil {
//	    return err // not a worker
//	}
//	f := blobseek.New(webfile.New(fileValue, reader))
package webfile
