package kmeans

import (
	"math/rand"

	"github.com/hupe1980/clusterkit/distance"
)

// DefaultMaxIterations bounds the iteration loop when WithMaxIterations is
// not given. It is the sole guard against non-termination when Tolerance is 0.
const DefaultMaxIterations = 100

// InitMethod selects the centroid initialization strategy.
type InitMethod int

const (
	// InitRandom selects k distinct observations uniformly at random.
	InitRandom InitMethod = iota
	// InitKMeansPlusPlus selects centroids with D² weighting, spreading the
	// initial centroids across the data.
	InitKMeansPlusPlus
)

// EmptyClusterPolicy decides what happens when a cluster receives zero
// observations during an update step.
type EmptyClusterPolicy int

const (
	// FreezeCentroid keeps the previous centroid for the empty cluster.
	// This is the default: it is deterministic and keeps the fixed-point
	// property of the iteration intact.
	FreezeCentroid EmptyClusterPolicy = iota
	// ReassignRandom reseeds the empty cluster from a random observation.
	ReassignRandom
	// FailOnEmpty aborts the fit with ErrEmptyCluster.
	FailOnEmpty
)

type options struct {
	maxIterations int
	tolerance     float64
	metric        distance.Metric
	init          InitMethod
	initial       [][]float64
	emptyPolicy   EmptyClusterPolicy
	rng           *rand.Rand
}

// Option configures a fit.
type Option func(*options)

// WithMaxIterations sets the iteration bound. Values < 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxIterations = n
		}
	}
}

// WithTolerance sets the convergence tolerance: the fit stops once the
// maximum per-coordinate centroid movement is <= eps.
//
// The default is 0, which reproduces the textbook exact-equality test. Exact
// equality can in principle oscillate without ever holding; set a small
// positive eps to rule that out. MaxIterations remains the hard bound either
// way.
func WithTolerance(eps float64) Option {
	return func(o *options) {
		if eps >= 0 {
			o.tolerance = eps
		}
	}
}

// WithMetric sets the distance metric used in the assignment step.
// The default is squared Euclidean distance.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithInit sets the initialization strategy. Ignored when initial centroids
// are given explicitly.
func WithInit(m InitMethod) Option {
	return func(o *options) {
		o.init = m
	}
}

// WithInitialCentroids supplies explicit initial centroids, bypassing random
// initialization entirely. len(centroids) must equal k and each centroid must
// have one value per feature column. The slices are copied.
func WithInitialCentroids(centroids [][]float64) Option {
	return func(o *options) {
		o.initial = centroids
	}
}

// WithEmptyClusterPolicy sets the empty-cluster recovery policy.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}

// WithSeed seeds the random number generator used for centroid
// initialization (and for ReassignRandom reseeding), making the whole fit
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) //nolint:gosec
	}
}

func defaultOptions() options {
	return options{
		maxIterations: DefaultMaxIterations,
		metric:        distance.MetricSquaredL2,
	}
}
