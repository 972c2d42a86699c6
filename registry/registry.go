// Package registry records completed analysis runs so that sweeps over a
// dataset can be compared and reproduced later.
//
// A run record is immutable: recording the same run ID twice is an error,
// which keeps concurrent analysts from silently overwriting each other's
// results.
package registry

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAlreadyRecorded is returned when a run ID has already been
	// recorded for the dataset.
	ErrAlreadyRecorded = errors.New("registry: run already recorded")

	// ErrNotFound is returned when no run with the given ID exists.
	ErrNotFound = errors.New("registry: run not found")
)

// RunRecord describes one completed clustering run.
type RunRecord struct {
	// ID uniquely identifies the run within its dataset.
	ID string `json:"id"`

	// Dataset names the input table the run was fitted on.
	Dataset string `json:"dataset"`

	K          int     `json:"k"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
	WCSS       float64 `json:"wcss"`
	Silhouette float64 `json:"silhouette"`

	CreatedAt time.Time `json:"created_at"`
}

// Registry stores run records.
type Registry interface {
	// Record stores a new run record. Returns ErrAlreadyRecorded if the
	// (dataset, id) pair already exists.
	Record(ctx context.Context, rec RunRecord) error

	// Get returns the run with the given dataset and ID.
	Get(ctx context.Context, dataset, id string) (*RunRecord, error)

	// List returns all runs recorded for the dataset, ordered by run ID.
	List(ctx context.Context, dataset string) ([]RunRecord, error)
}
