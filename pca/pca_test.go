package pca

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterkit/dataset"
)

func lineTable(t *testing.T) *dataset.Table {
	t.Helper()
	// Points along y = 2x with small perpendicular jitter.
	tbl, err := dataset.FromRecords([][]float64{
		{0, 0.1}, {1, 1.9}, {2, 4.1}, {3, 5.9}, {4, 8.1}, {5, 9.9},
	}, []string{"x", "y"})
	require.NoError(t, err)
	return tbl
}

func TestFit_InvalidComponents(t *testing.T) {
	tbl := lineTable(t)

	_, err := Fit(tbl, 0)
	assert.ErrorIs(t, err, ErrInvalidComponents)

	_, err = Fit(tbl, 3) // min(6 rows, 2 cols) = 2
	assert.ErrorIs(t, err, ErrInvalidComponents)
}

func TestFitTransform(t *testing.T) {
	tbl := lineTable(t)

	proj, err := Fit(tbl, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, proj.Components())

	out, err := proj.Transform(tbl)
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows(), out.Rows())
	assert.Equal(t, []string{"pc1", "pc2"}, out.ColumnNames())

	// The first component carries nearly all the variance of the line.
	ratio := proj.ExplainedVarianceRatio()
	assert.Greater(t, ratio[0], 0.99)
	assert.InDelta(t, 1.0, ratio[0]+ratio[1], 1e-9)

	// Projection is centered: column means of the output are zero.
	means := out.ColumnMeans()
	assert.InDelta(t, 0, means[0], 1e-9)
	assert.InDelta(t, 0, means[1], 1e-9)
}

func TestTransform_PreservesVariance(t *testing.T) {
	tbl := lineTable(t)

	proj, err := Fit(tbl, 2)
	require.NoError(t, err)

	out, err := proj.Transform(tbl)
	require.NoError(t, err)

	// Full-rank projection is a rotation: total variance is unchanged.
	var orig, proj2 float64
	means := tbl.ColumnMeans()
	for i := 0; i < tbl.Rows(); i++ {
		for j := 0; j < tbl.Cols(); j++ {
			d := tbl.At(i, j) - means[j]
			orig += d * d
			proj2 += out.At(i, j) * out.At(i, j)
		}
	}
	assert.InDelta(t, orig, proj2, 1e-6*math.Max(1, orig))
}

func TestTransform_DimensionMismatch(t *testing.T) {
	tbl := lineTable(t)

	proj, err := Fit(tbl, 1)
	require.NoError(t, err)

	other, err := dataset.FromRecords([][]float64{{1, 2, 3}}, []string{"a", "b", "c"})
	require.NoError(t, err)

	_, err = proj.Transform(other)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestExplainedVariance_Penguins(t *testing.T) {
	tbl, err := dataset.Penguins()
	require.NoError(t, err)

	proj, err := Fit(tbl, 2)
	require.NoError(t, err)

	ev := proj.ExplainedVariance()
	assert.Len(t, ev, 2)
	assert.Greater(t, ev[0], ev[1])

	// Body mass dominates the unscaled measurements, so the first
	// component alone explains most of the variance.
	ratio := proj.ExplainedVarianceRatio()
	assert.Greater(t, ratio[0], 0.9)
}
