package kmeans

import "github.com/RoaringBitmap/roaring/v2"

// Result is the outcome of a fit. All slices are owned by the caller.
type Result struct {
	// Centroids holds the final cluster representatives, one per cluster.
	Centroids [][]float64

	// Assignments maps each observation to the index of its centroid in
	// Centroids (0-based, in [0, k)).
	Assignments []int

	// Iterations is the number of assignment/update rounds executed.
	Iterations int

	// Converged reports whether the fit stopped because centroid movement
	// fell within tolerance, rather than by hitting the iteration bound.
	// A non-converged result is still usable; rerun with a larger
	// iteration bound or different seed if needed.
	Converged bool
}

// K returns the number of clusters.
func (r *Result) K() int { return len(r.Centroids) }

// ClusterSizes returns the number of observations assigned to each cluster.
func (r *Result) ClusterSizes() []int {
	sizes := make([]int, len(r.Centroids))
	for _, c := range r.Assignments {
		sizes[c]++
	}
	return sizes
}

// Members returns a bitmap of the row indices assigned to cluster c,
// suitable for dataset.Table.Select.
func (r *Result) Members(c int) *roaring.Bitmap {
	bm := roaring.New()
	for i, a := range r.Assignments {
		if a == c {
			bm.Add(uint32(i))
		}
	}
	return bm
}
