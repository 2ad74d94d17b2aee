package ports

import "io"

// FileStore persists uploaded images.
type FileStore interface {
	// Save writes src to storage and returns the stored path. The original
	// filename is only consulted for its extension.
	Save(src io.Reader, filename string) (string, error)
	Remove(path string) error
}

// FileDiscarder schedules best-effort removal of a stored file. Discard must
// never block the caller; failures are logged, not returned.
type FileDiscarder interface {
	Discard(path string)
}
