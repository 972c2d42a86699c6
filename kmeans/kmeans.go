package kmeans

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
)

// Fit clusters the observations of t into k partitions using Lloyd's
// algorithm and returns the final centroids and assignments.
//
// The table is never mutated. Cancellation is checked between iterations.
func Fit(ctx context.Context, t *dataset.Table, k int, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n, p := t.Rows(), t.Cols()

	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}
	if p == 0 {
		return nil, ErrNoColumns
	}
	if k > n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrTooFewRows, k, n)
	}
	if !t.IsComplete() {
		return nil, ErrNonFinite
	}

	distFunc, err := distance.Provider(o.metric)
	if err != nil {
		return nil, err
	}

	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec
	}

	// Centroids are kept flattened (k * p), row j at [j*p : (j+1)*p].
	centroids, err := initialCentroids(t, k, distFunc, &o)
	if err != nil {
		return nil, err
	}

	var (
		assignments = make([]int, n)
		next        = make([]float64, k*p)
		counts      = make([]int, k)
		iterations  int
		converged   bool
	)

	for iter := 1; iter <= o.maxIterations; iter++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		iterations = iter

		// Assignment step. Strict < keeps ties on the lowest centroid
		// index, making the step deterministic.
		for i := 0; i < n; i++ {
			row := t.Row(i)
			best := 0
			minDist := math.MaxFloat64

			for j := 0; j < k; j++ {
				d := distFunc(row, centroids[j*p:(j+1)*p])
				if d < minDist {
					minDist = d
					best = j
				}
			}

			assignments[i] = best
		}

		// Update step: coordinate-wise mean per cluster.
		for i := range next {
			next[i] = 0
		}
		for j := range counts {
			counts[j] = 0
		}
		for i := 0; i < n; i++ {
			c := assignments[i]
			row := t.Row(i)
			for f := 0; f < p; f++ {
				next[c*p+f] += row[f]
			}
			counts[c]++
		}

		reseeded := false
		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				inv := 1.0 / float64(counts[j])
				for f := 0; f < p; f++ {
					next[j*p+f] *= inv
				}
				continue
			}

			switch o.emptyPolicy {
			case FreezeCentroid:
				copy(next[j*p:(j+1)*p], centroids[j*p:(j+1)*p])
			case ReassignRandom:
				copy(next[j*p:(j+1)*p], t.Row(o.rng.Intn(n)))
				reseeded = true
			case FailOnEmpty:
				return nil, fmt.Errorf("%w: cluster %d at iteration %d", ErrEmptyCluster, j, iter)
			}
		}

		// Convergence: maximum per-coordinate centroid movement within
		// tolerance. A reseeded cluster always forces another round.
		var maxMove float64
		for i := range next {
			move := math.Abs(next[i] - centroids[i])
			if move > maxMove {
				maxMove = move
			}
		}

		centroids, next = next, centroids

		if !reseeded && maxMove <= o.tolerance {
			converged = true
			break
		}
	}

	out := make([][]float64, k)
	for j := 0; j < k; j++ {
		c := make([]float64, p)
		copy(c, centroids[j*p:(j+1)*p])
		out[j] = c
	}

	return &Result{
		Centroids:   out,
		Assignments: assignments,
		Iterations:  iterations,
		Converged:   converged,
	}, nil
}

// Assign returns the index of the centroid closest to point, with ties going
// to the lowest index.
func Assign(point []float64, centroids [][]float64, opts ...Option) (int, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	distFunc, err := distance.Provider(o.metric)
	if err != nil {
		return -1, err
	}

	best := -1
	minDist := math.MaxFloat64

	for j, c := range centroids {
		d := distFunc(point, c)
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best, nil
}
