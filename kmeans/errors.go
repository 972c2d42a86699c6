package kmeans

import "errors"

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("kmeans: k must be positive")

	// ErrTooFewRows is returned when k exceeds the number of observations.
	ErrTooFewRows = errors.New("kmeans: k exceeds number of observations")

	// ErrNoColumns is returned when the table has no feature columns.
	ErrNoColumns = errors.New("kmeans: table has no feature columns")

	// ErrNonFinite is returned when the table contains NaN or infinite
	// values. Filter with dataset.DropIncomplete before fitting.
	ErrNonFinite = errors.New("kmeans: table contains non-finite values")

	// ErrEmptyCluster is returned under the FailOnEmpty policy when a
	// cluster receives zero observations during an update step.
	ErrEmptyCluster = errors.New("kmeans: cluster became empty")

	// ErrBadInitialCentroids is returned when explicitly supplied initial
	// centroids do not match k or the table's column count.
	ErrBadInitialCentroids = errors.New("kmeans: initial centroids do not match k and feature count")
)
