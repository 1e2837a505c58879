package storage

import "io"

// Storage persists uploaded files. Local disk is the only implementation for
// now; the interface keeps handlers independent of where files land.
type Storage interface {
	Save(dir, fileName string, src io.Reader) (path string, err error)
	Delete(path string) error
	URL(path string) string
}
