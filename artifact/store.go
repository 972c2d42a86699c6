// Package artifact persists analysis results as immutable named blobs.
//
// A Store is a flat keyspace of byte blobs; implementations cover local
// files, memory (tests), S3 and MinIO. Blobs are small whole documents
// (encoded analyses), so the interface reads and writes complete byte
// slices rather than streaming.
package artifact

import (
	"context"
	"os"
)

// ErrNotFound is returned when an artifact does not exist.
//
// Implementations must return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading and writing immutable artifacts.
type Store interface {
	// Put stores data under name, replacing any existing artifact.
	Put(ctx context.Context, name string, data []byte) error

	// Open reads the artifact stored under name.
	Open(ctx context.Context, name string) ([]byte, error)

	// List returns the names of all artifacts with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the artifact stored under name.
	Delete(ctx context.Context, name string) error
}
