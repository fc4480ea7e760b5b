//go:build js && wasm

package webfile

import (
	"errors"
	"fmt"
	"syscall/js"
)

// ErrNoFileReaderSync is returned when FileReaderSync is unavailable,
// typically because the code runs on the main thread instead of a worker.
var ErrNoFileReaderSync = errors.New("webfile: FileReaderSync unavailable (not a web worker)")

// SyncReader materializes blob slices with a FileReaderSync.
// One SyncReader may serve any number of Blobs on the same worker.
type SyncReader struct {
	reader js.Value
}

// NewSyncReader constructs a FileReaderSync.
func NewSyncReader() (*SyncReader, error) {
	ctor := js.Global().Get("FileReaderSync")
	if ctor.IsUndefined() || ctor.IsNull() {
		return nil, ErrNoFileReaderSync
	}

	var r SyncReader
	if err := catch(func() { r.reader = ctor.New() }); err != nil {
		return nil, fmt.Errorf("webfile: new FileReaderSync: %w", err)
	}
	return &r, nil
}

// ReadBytes reads a JS Blob completely into Go memory.
func (r *SyncReader) ReadBytes(blob js.Value) ([]byte, error) {
	var buf []byte
	err := catch(func() {
		ab := r.reader.Call("readAsArrayBuffer", blob)
		arr := js.Global().Get("Uint8Array").New(ab)
		buf = make([]byte, arr.Get("length").Int())
		js.CopyBytesToGo(buf, arr)
	})
	if err != nil {
		return nil, fmt.Errorf("webfile: readAsArrayBuffer: %w", err)
	}
	return buf, nil
}

// Blob is a handle over a JS File or Blob.
type Blob struct {
	file   js.Value
	reader *SyncReader
}

// New wraps file. reader performs the synchronous reads.
func New(file js.Value, reader *SyncReader) *Blob {
	return &Blob{file: file, reader: reader}
}

// Size returns the size attribute of the File.
func (b *Blob) Size() float64 {
	return b.file.Get("size").Float()
}

// Slice returns the bytes in [start, end) using the browser's clipping rules.
func (b *Blob) Slice(start, end float64) ([]byte, error) {
	var part js.Value
	err := catch(func() {
		part = b.file.Call("slice", start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("webfile: slice [%v, %v): %w", start, end, err)
	}
	return b.reader.ReadBytes(part)
}

// Close is a no-op; the File belongs to the page.
func (b *Blob) Close() error {
	return nil
}

// catch turns a thrown JS exception into an error.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}
