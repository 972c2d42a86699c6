package clusterkit

import "errors"

var (
	// ErrNoArtifactStore is returned by SaveAnalysis and LoadAnalysis when
	// no artifact store was configured.
	ErrNoArtifactStore = errors.New("clusterkit: no artifact store configured")

	// ErrInvalidSweepRange is returned by Sweep when kmin/kmax do not
	// describe a valid range.
	ErrInvalidSweepRange = errors.New("clusterkit: invalid sweep range")

	// ErrNilTable is returned when a nil table is passed to Run or Sweep.
	ErrNilTable = errors.New("clusterkit: table is nil")
)
