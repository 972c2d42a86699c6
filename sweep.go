package clusterkit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/kmeans"
	"github.com/hupe1980/clusterkit/quality"
)

// SweepResult holds one analysis per K, ordered by K ascending.
type SweepResult struct {
	Dataset  string
	Analyses []*Analysis
}

// Series extracts the quality metrics per K, for elbow and silhouette
// inspection.
func (s *SweepResult) Series() quality.Series {
	series := make(quality.Series, 0, len(s.Analyses))
	for _, an := range s.Analyses {
		series = append(series, quality.Point{
			K:          an.K,
			WCSS:       an.WCSS,
			Silhouette: an.Silhouette,
			Converged:  an.Converged,
		})
	}
	return series
}

// Best returns the analysis with the highest silhouette, or nil for an
// empty sweep.
func (s *SweepResult) Best() *Analysis {
	var best *Analysis
	for _, an := range s.Analyses {
		if best == nil || an.Silhouette > best.Silhouette {
			best = an
		}
	}
	return best
}

// Sweep fits every K in [kmin, kmax] and returns the analyses ordered by K.
//
// Each K runs several independently seeded k-means++ fits in parallel,
// bounded by WithConcurrency, and keeps the best fit by WCSS. Each K > kmin
// additionally tries a warm start seeded from the previous K's centroids
// plus the observation farthest from its centroid, which guarantees the
// reported WCSS never increases as K grows.
//
// Sweep analyses skip the PCA projection since it does not depend on K; use
// Run for the full analysis of a chosen K.
func (a *Analyzer) Sweep(ctx context.Context, t *dataset.Table, kmin, kmax int) (*SweepResult, error) {
	start := time.Now()

	result, runs, err := a.sweep(ctx, t, kmin, kmax)

	duration := time.Since(start)
	a.metrics.RecordSweep(runs, duration, err)
	a.logger.LogSweep(ctx, kmin, kmax, runs, duration, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a *Analyzer) sweep(ctx context.Context, t *dataset.Table, kmin, kmax int) (*SweepResult, int, error) {
	if t == nil {
		return nil, 0, ErrNilTable
	}
	if kmin < 1 || kmax < kmin || kmax > t.Rows() {
		return nil, 0, fmt.Errorf("%w: kmin=%d kmax=%d rows=%d", ErrInvalidSweepRange, kmin, kmax, t.Rows())
	}

	result := &SweepResult{
		Dataset:  a.opts.dataset,
		Analyses: make([]*Analysis, 0, kmax-kmin+1),
	}

	var runs int
	var prev *kmeans.Result

	// K values run in ascending order so each K can warm-start from the
	// previous one; the restarts within a K are what run in parallel.
	for k := kmin; k <= kmax; k++ {
		best, n, err := a.fitBest(ctx, t, k, prev)
		runs += n
		if err != nil {
			return nil, runs, err
		}

		an, err := a.assemble(t, best, false)
		if err != nil {
			return nil, runs, err
		}
		result.Analyses = append(result.Analyses, an)
		prev = best
	}

	return result, runs, nil
}

// fitBest runs the restarts for one K in parallel and returns the fit with
// the lowest WCSS, along with the number of fits attempted.
func (a *Analyzer) fitBest(ctx context.Context, t *dataset.Table, k int, prev *kmeans.Result) (*kmeans.Result, int, error) {
	var attempts [][]kmeans.Option

	for i := 0; i < a.opts.restarts; i++ {
		opts := append([]kmeans.Option{}, a.opts.kmeansOptions...)
		opts = append(opts,
			kmeans.WithInitialCentroids(nil),
			kmeans.WithInit(kmeans.InitKMeansPlusPlus),
			kmeans.WithSeed(a.opts.seed+int64(k)*1021+int64(i)),
		)
		attempts = append(attempts, opts)
	}

	if prev != nil && prev.K() == k-1 {
		opts := append([]kmeans.Option{}, a.opts.kmeansOptions...)
		opts = append(opts, kmeans.WithInitialCentroids(warmStart(t, prev)))
		attempts = append(attempts, opts)
	}

	results := make([]*kmeans.Result, len(attempts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.concurrency)
	for i, opts := range attempts {
		g.Go(func() error {
			res, err := kmeans.Fit(gctx, t, k, opts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, len(attempts), err
	}

	best := results[0]
	bestWCSS := quality.WCSS(t, best.Centroids, best.Assignments)
	for _, res := range results[1:] {
		if w := quality.WCSS(t, res.Centroids, res.Assignments); w < bestWCSS {
			best, bestWCSS = res, w
		}
	}
	return best, len(attempts), nil
}

// warmStart builds initial centroids for K clusters from a (K-1)-cluster
// fit: the previous centroids plus the observation farthest from its own
// centroid. The initial partition is then at least as good as the previous
// fit, and Lloyd iterations only improve it.
func warmStart(t *dataset.Table, prev *kmeans.Result) [][]float64 {
	worst, worstDist := 0, -1.0
	for i := 0; i < t.Rows(); i++ {
		d := distance.SquaredL2(t.Row(i), prev.Centroids[prev.Assignments[i]])
		if d > worstDist {
			worst, worstDist = i, d
		}
	}

	centroids := make([][]float64, 0, len(prev.Centroids)+1)
	centroids = append(centroids, prev.Centroids...)

	row := make([]float64, t.Cols())
	copy(row, t.Row(worst))
	return append(centroids, row)
}
