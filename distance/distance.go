// Package distance provides the distance metrics used for centroid
// assignment. All functions operate on float64 feature vectors of equal
// length (caller's responsibility).
package distance

import "fmt"

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors. Assumes vectors are the same length.
func SquaredL2(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// L1 calculates the Manhattan distance between two vectors.
// Assumes vectors are the same length.
func L1(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		s += d
	}
	return s
}

// Metric represents the distance metric used for observation comparison.
type Metric int

const (
	MetricSquaredL2 Metric = iota
	MetricL1
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricL1:
		return "L1"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricL1:
		return L1, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
