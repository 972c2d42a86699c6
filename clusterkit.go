package clusterkit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/clusterkit/codec"
	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/kmeans"
	"github.com/hupe1980/clusterkit/pca"
	"github.com/hupe1980/clusterkit/quality"
	"github.com/hupe1980/clusterkit/registry"
)

// Analysis is the complete result of one clustering run: the fitted
// partition plus the quality metrics and the 2D projection used to inspect
// it. It is self-contained and JSON-serializable for persistence.
type Analysis struct {
	// Dataset names the input table the analysis was fitted on.
	Dataset string `json:"dataset"`

	// K is the number of clusters requested.
	K int `json:"k"`

	// Centroids holds the final cluster centers, one row per cluster.
	Centroids [][]float64 `json:"centroids"`

	// Assignments maps each observation to its cluster index (0-based).
	Assignments []int `json:"assignments"`

	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`

	// WCSS is the within-cluster sum of squares of the final partition.
	WCSS float64 `json:"wcss"`

	// Silhouette is the mean silhouette coefficient. It is 0 when K < 2 and
	// when the fit collapsed to a single non-empty cluster.
	Silhouette float64 `json:"silhouette"`

	// Projection holds the first principal-component scores per
	// observation, for plotting. Nil when the table has fewer than two
	// columns or for sweep runs.
	Projection [][]float64 `json:"projection,omitempty"`

	// ExplainedVarianceRatio is the fraction of total variance captured by
	// each projection component.
	ExplainedVarianceRatio []float64 `json:"explained_variance_ratio,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ClusterSizes returns the number of observations per cluster.
func (a *Analysis) ClusterSizes() []int {
	sizes := make([]int, a.K)
	for _, c := range a.Assignments {
		sizes[c]++
	}
	return sizes
}

// Analyzer is the high-level entry point: it runs clustering fits, computes
// quality metrics and projections, and optionally persists and registers
// the results.
//
// An Analyzer is safe for concurrent use.
type Analyzer struct {
	logger  *Logger
	metrics MetricsCollector
	codec   codec.Codec
	opts    options
}

// New creates an Analyzer.
func New(optFns ...Option) *Analyzer {
	o := applyOptions(optFns)
	return &Analyzer{
		logger:  o.logger.WithDataset(o.dataset),
		metrics: o.metricsCollector,
		codec:   o.codec,
		opts:    o,
	}
}

// Run fits k clusters on the table and returns the full analysis: the
// partition, WCSS, mean silhouette (for k >= 2), and a two-component PCA
// projection of the observations (when the table has at least two columns).
//
// When a registry is configured the run is recorded under a fresh run ID.
func (a *Analyzer) Run(ctx context.Context, t *dataset.Table, k int) (*Analysis, error) {
	start := time.Now()

	an, err := a.analyze(ctx, t, k, true, a.opts.kmeansOptions)

	duration := time.Since(start)
	a.metrics.RecordRun(k, duration, err)
	if err != nil {
		a.logger.LogRun(ctx, k, 0, false, 0, duration, err)
		return nil, err
	}
	a.logger.LogRun(ctx, k, an.Iterations, an.Converged, an.WCSS, duration, nil)

	if a.opts.registry != nil {
		rec := registry.RunRecord{
			ID:         fmt.Sprintf("k%d-%d", k, an.CreatedAt.UnixNano()),
			Dataset:    an.Dataset,
			K:          an.K,
			Iterations: an.Iterations,
			Converged:  an.Converged,
			WCSS:       an.WCSS,
			Silhouette: an.Silhouette,
			CreatedAt:  an.CreatedAt,
		}
		if err := a.opts.registry.Record(ctx, rec); err != nil {
			return nil, fmt.Errorf("clusterkit: record run: %w", err)
		}
	}

	return an, nil
}

// analyze fits the table and assembles the analysis. The projection is only
// computed when project is set; sweeps skip it since it does not depend on k.
func (a *Analyzer) analyze(ctx context.Context, t *dataset.Table, k int, project bool, kmOpts []kmeans.Option) (*Analysis, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	res, err := kmeans.Fit(ctx, t, k, kmOpts...)
	if err != nil {
		return nil, err
	}
	return a.assemble(t, res, project)
}

func (a *Analyzer) assemble(t *dataset.Table, res *kmeans.Result, project bool) (*Analysis, error) {
	an := &Analysis{
		Dataset:     a.opts.dataset,
		K:           res.K(),
		Centroids:   res.Centroids,
		Assignments: res.Assignments,
		Iterations:  res.Iterations,
		Converged:   res.Converged,
		WCSS:        quality.WCSS(t, res.Centroids, res.Assignments),
		CreatedAt:   time.Now().UTC(),
	}

	if an.K >= 2 {
		sil, err := quality.Silhouette(t, res.Assignments, an.K)
		switch {
		case errors.Is(err, quality.ErrDegeneratePartition):
			// A fit that collapsed into a single cluster scores 0, so
			// Sweep.Best never prefers it over a real partition.
		case err != nil:
			return nil, err
		default:
			an.Silhouette = sil
		}
	}

	if project && t.Cols() >= 2 {
		pr, err := pca.Fit(t, 2)
		if err != nil {
			return nil, err
		}
		scores, err := pr.Transform(t)
		if err != nil {
			return nil, err
		}

		an.Projection = make([][]float64, scores.Rows())
		for i := range an.Projection {
			row := make([]float64, scores.Cols())
			copy(row, scores.Row(i))
			an.Projection[i] = row
		}
		an.ExplainedVarianceRatio = pr.ExplainedVarianceRatio()
	}

	return an, nil
}
