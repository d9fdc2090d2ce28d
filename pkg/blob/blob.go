// Package blob abstracts the storage that holds uploaded media files.
// Two backends exist: the local filesystem (default) and S3/MinIO.
package blob

import (
	"errors"
	"io"
)

// ErrNotExist is returned when the named object is not in the store.
var ErrNotExist = errors.New("blob: object does not exist")

// Store reads and writes media blobs by name. Names are flat — no
// directories — and are generated server-side, never taken verbatim
// from clients.
type Store interface {
	// Save writes the object and returns the backend-specific location
	// (a filesystem path or an object URL).
	Save(name string, r io.Reader, contentType string) (string, error)

	// Open returns the whole object and its size.
	Open(name string) (io.ReadCloser, int64, error)

	// OpenRange returns the byte span [start, end] inclusive. Callers
	// are responsible for validating the range against Size first.
	OpenRange(name string, start, end int64) (io.ReadCloser, error)

	Size(name string) (int64, error)

	Remove(name string) error
}
