package kmeans

import (
	"fmt"
	"math"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
)

func initialCentroids(t *dataset.Table, k int, distFunc distance.Func, o *options) ([]float64, error) {
	p := t.Cols()

	if o.initial != nil {
		if len(o.initial) != k {
			return nil, fmt.Errorf("%w: got %d centroids, want %d", ErrBadInitialCentroids, len(o.initial), k)
		}
		centroids := make([]float64, k*p)
		for j, c := range o.initial {
			if len(c) != p {
				return nil, fmt.Errorf("%w: centroid %d has %d values, want %d", ErrBadInitialCentroids, j, len(c), p)
			}
			copy(centroids[j*p:(j+1)*p], c)
		}
		return centroids, nil
	}

	switch o.init {
	case InitKMeansPlusPlus:
		return plusPlusCentroids(t, k, distFunc, o), nil
	default:
		return randomCentroids(t, k, o), nil
	}
}

// randomCentroids selects k distinct observations uniformly at random.
func randomCentroids(t *dataset.Table, k int, o *options) []float64 {
	n, p := t.Rows(), t.Cols()

	centroids := make([]float64, k*p)
	perm := o.rng.Perm(n)
	for j := 0; j < k; j++ {
		copy(centroids[j*p:(j+1)*p], t.Row(perm[j]))
	}
	return centroids
}

// plusPlusCentroids implements k-means++ seeding: the first centroid is
// uniform, each further centroid is drawn with probability proportional to
// its distance from the nearest centroid chosen so far.
func plusPlusCentroids(t *dataset.Table, k int, distFunc distance.Func, o *options) []float64 {
	n, p := t.Rows(), t.Cols()

	centroids := make([]float64, k*p)
	copy(centroids[:p], t.Row(o.rng.Intn(n)))

	dists := make([]float64, n)

	for j := 1; j < k; j++ {
		var total float64
		for i := 0; i < n; i++ {
			minDist := math.MaxFloat64
			row := t.Row(i)
			for c := 0; c < j; c++ {
				d := distFunc(row, centroids[c*p:(c+1)*p])
				if d < minDist {
					minDist = d
				}
			}
			dists[i] = minDist
			total += minDist
		}

		if total == 0 {
			// All observations coincide with a chosen centroid.
			copy(centroids[j*p:(j+1)*p], t.Row(o.rng.Intn(n)))
			continue
		}

		threshold := o.rng.Float64() * total
		var cumsum float64
		chosen := n - 1
		for i, d := range dists {
			cumsum += d
			if cumsum >= threshold {
				chosen = i
				break
			}
		}
		copy(centroids[j*p:(j+1)*p], t.Row(chosen))
	}

	return centroids
}
