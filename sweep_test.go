package clusterkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterkit/dataset"
)

func TestAnalyzer_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("penguins k=2..7", func(t *testing.T) {
		table := penguinsTable(t)

		a := New(
			WithDatasetName("penguins"),
			WithSeed(42),
			WithConcurrency(2),
		)

		sweep, err := a.Sweep(ctx, table, 2, 7)
		require.NoError(t, err)
		require.Len(t, sweep.Analyses, 6)

		for i, an := range sweep.Analyses {
			assert.Equal(t, 2+i, an.K)
			assert.Len(t, an.Assignments, table.Rows())
			assert.Greater(t, an.WCSS, 0.0)
			// Sweeps skip the projection.
			assert.Nil(t, an.Projection)
		}

		series := sweep.Series()
		require.Len(t, series, 6)
		assert.True(t, series.NonIncreasingWCSS())

		best := sweep.Best()
		require.NotNil(t, best)
		assert.Equal(t, best.Silhouette, series.BestSilhouette().Silhouette)
	})

	t.Run("single k", func(t *testing.T) {
		table := penguinsTable(t)

		a := New(WithSeed(1))

		sweep, err := a.Sweep(ctx, table, 3, 3)
		require.NoError(t, err)
		require.Len(t, sweep.Analyses, 1)
		assert.Equal(t, 3, sweep.Analyses[0].K)
	})

	t.Run("invalid range", func(t *testing.T) {
		table := penguinsTable(t)

		a := New()

		_, err := a.Sweep(ctx, table, 0, 3)
		assert.ErrorIs(t, err, ErrInvalidSweepRange)

		_, err = a.Sweep(ctx, table, 4, 2)
		assert.ErrorIs(t, err, ErrInvalidSweepRange)

		_, err = a.Sweep(ctx, table, 2, table.Rows()+1)
		assert.ErrorIs(t, err, ErrInvalidSweepRange)
	})

	t.Run("nil table", func(t *testing.T) {
		a := New()

		_, err := a.Sweep(ctx, nil, 2, 4)
		assert.ErrorIs(t, err, ErrNilTable)
	})

	t.Run("cancellation", func(t *testing.T) {
		table := penguinsTable(t)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		a := New()
		_, err := a.Sweep(cancelled, table, 2, 4)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("collects metrics", func(t *testing.T) {
		table := penguinsTable(t)
		metrics := &BasicMetricsCollector{}

		a := New(
			WithMetricsCollector(metrics),
			WithSeed(42),
			WithRestarts(2),
		)

		_, err := a.Sweep(ctx, table, 2, 3)
		require.NoError(t, err)

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.SweepCount)
		// Two restarts for k=2, two restarts plus the warm start for k=3.
		assert.Equal(t, int64(5), stats.SweepRuns)
	})
}

func TestSweepResult_Empty(t *testing.T) {
	s := &SweepResult{}
	assert.Nil(t, s.Best())
	assert.Empty(t, s.Series())
}

func TestWarmStart(t *testing.T) {
	table, err := dataset.FromRecords([][]float64{
		{0, 0},
		{1, 0},
		{10, 10},
	}, []string{"x", "y"})
	require.NoError(t, err)

	a := New(WithSeed(3))

	sweep, err := a.Sweep(context.Background(), table, 1, 3)
	require.NoError(t, err)
	require.Len(t, sweep.Analyses, 3)

	// Three clusters over three points is a perfect partition.
	assert.InDelta(t, 0.0, sweep.Analyses[2].WCSS, 1e-12)
	assert.True(t, sweep.Series().NonIncreasingWCSS())
}
