// Package pca provides principal component analysis for projecting a numeric
// table onto its directions of maximum variance, typically to obtain a
// 2-component view of a clustering for plotting.
package pca

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/clusterkit/dataset"
)

var (
	// ErrInvalidComponents is returned when the requested component count
	// is outside [1, min(N, P)].
	ErrInvalidComponents = errors.New("pca: components must be in [1, min(rows, cols)]")

	// ErrDimensionMismatch is returned by Transform when the table's column
	// count differs from the fitted data.
	ErrDimensionMismatch = errors.New("pca: table column count does not match fit")

	// ErrFactorization is returned when the SVD fails to converge.
	ErrFactorization = errors.New("pca: SVD factorization failed")
)

// Projection is a fitted PCA basis.
type Projection struct {
	axes     *mat.Dense // p x c, principal axes as columns
	means    []float64
	singular []float64 // all singular values, descending
	n        int       // observations used in the fit
	c        int       // retained components
}

// Fit centers the table column-wise and computes its top principal
// components via thin SVD.
func Fit(t *dataset.Table, components int) (*Projection, error) {
	n, p := t.Rows(), t.Cols()

	limit := n
	if p < limit {
		limit = p
	}
	if components < 1 || components > limit {
		return nil, fmt.Errorf("%w: got %d with rows=%d, cols=%d", ErrInvalidComponents, components, n, p)
	}

	means := t.ColumnMeans()

	centered := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		row := t.Row(i)
		for j := 0; j < p; j++ {
			centered.Set(i, j, row[j]-means[j])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, ErrFactorization
	}

	var v mat.Dense
	svd.VTo(&v)

	axes := mat.NewDense(p, components, nil)
	for j := 0; j < components; j++ {
		for i := 0; i < p; i++ {
			axes.Set(i, j, v.At(i, j))
		}
	}

	return &Projection{
		axes:     axes,
		means:    means,
		singular: svd.Values(nil),
		n:        n,
		c:        components,
	}, nil
}

// Components returns the number of retained components.
func (pr *Projection) Components() int { return pr.c }

// Transform projects the rows of t onto the retained principal axes. The
// result has one column per component, named "pc1", "pc2", ...
func (pr *Projection) Transform(t *dataset.Table) (*dataset.Table, error) {
	p := len(pr.means)
	if t.Cols() != p {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, t.Cols(), p)
	}

	n := t.Rows()
	records := make([][]float64, n)

	row := make([]float64, p)
	for i := 0; i < n; i++ {
		src := t.Row(i)
		for j := 0; j < p; j++ {
			row[j] = src[j] - pr.means[j]
		}

		out := make([]float64, pr.c)
		for j := 0; j < pr.c; j++ {
			var s float64
			for f := 0; f < p; f++ {
				s += row[f] * pr.axes.At(f, j)
			}
			out[j] = s
		}
		records[i] = out
	}

	cols := make([]string, pr.c)
	for j := range cols {
		cols[j] = fmt.Sprintf("pc%d", j+1)
	}

	return dataset.FromRecords(records, cols)
}

// ExplainedVariance returns the variance captured by each retained component.
func (pr *Projection) ExplainedVariance() []float64 {
	out := make([]float64, pr.c)
	for j := 0; j < pr.c; j++ {
		out[j] = pr.singular[j] * pr.singular[j] / float64(pr.n-1)
	}
	return out
}

// ExplainedVarianceRatio returns each retained component's share of the total
// variance, in (0, 1].
func (pr *Projection) ExplainedVarianceRatio() []float64 {
	var total float64
	for _, s := range pr.singular {
		total += s * s
	}

	out := make([]float64, pr.c)
	if total == 0 {
		return out
	}
	for j := 0; j < pr.c; j++ {
		out[j] = pr.singular[j] * pr.singular[j] / total
	}
	return out
}
