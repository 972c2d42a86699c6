// Package quality computes cluster-quality metrics: within-cluster sum of
// squares (compactness) and the mean silhouette coefficient (cohesion vs
// separation). Both consume the output of a kmeans fit and are used to guide
// the analyst's choice of k.
package quality

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
)

var (
	// ErrTooFewClusters is returned by Silhouette when k < 2; the
	// coefficient is undefined for a single cluster.
	ErrTooFewClusters = errors.New("quality: silhouette requires at least 2 clusters")

	// ErrAssignmentLength is returned when the assignment vector does not
	// match the table's row count.
	ErrAssignmentLength = errors.New("quality: assignment length does not match row count")

	// ErrDegeneratePartition is returned by Silhouette when fewer than two
	// clusters actually contain observations. The coefficient needs a
	// nearest foreign cluster per observation, which does not exist in a
	// collapsed partition.
	ErrDegeneratePartition = errors.New("quality: fewer than two non-empty clusters")
)

// WCSS returns the within-cluster sum of squares: the total squared Euclidean
// distance from each observation to its assigned centroid.
func WCSS(t *dataset.Table, centroids [][]float64, assignments []int) float64 {
	var total float64
	for i := 0; i < t.Rows(); i++ {
		total += distance.SquaredL2(t.Row(i), centroids[assignments[i]])
	}
	return total
}

// Silhouette returns the mean silhouette coefficient of the clustering,
// in [-1, 1]. Observations in singleton clusters contribute 0, following the
// usual convention. A partition where fewer than two clusters are non-empty
// has no defined coefficient and yields ErrDegeneratePartition. Cost is
// O(n²) pairwise distances.
func Silhouette(t *dataset.Table, assignments []int, k int) (float64, error) {
	n := t.Rows()

	if k < 2 {
		return 0, fmt.Errorf("%w: k=%d", ErrTooFewClusters, k)
	}
	if len(assignments) != n {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrAssignmentLength, len(assignments), n)
	}

	sizes := make([]int, k)
	for _, c := range assignments {
		sizes[c]++
	}

	nonEmpty := 0
	for _, size := range sizes {
		if size > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return 0, fmt.Errorf("%w: %d of %d", ErrDegeneratePartition, nonEmpty, k)
	}

	// sumDist[c] accumulates, per observation, the total distance to the
	// members of cluster c.
	sumDist := make([]float64, k)

	var total float64
	for i := 0; i < n; i++ {
		if sizes[assignments[i]] == 1 {
			continue // silhouette of a singleton is defined as 0
		}

		for c := range sumDist {
			sumDist[c] = 0
		}
		row := t.Row(i)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			sumDist[assignments[j]] += floats.Distance(row, t.Row(j), 2)
		}

		own := assignments[i]
		a := sumDist[own] / float64(sizes[own]-1)

		b := math.MaxFloat64
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if mean := sumDist[c] / float64(sizes[c]); mean < b {
				b = mean
			}
		}

		if denom := math.Max(a, b); denom > 0 {
			total += (b - a) / denom
		}
	}

	return total / float64(n), nil
}
