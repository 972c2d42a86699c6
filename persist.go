package clusterkit

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/clusterkit/artifact"
)

// ArtifactName returns the deterministic artifact key an analysis is saved
// under: "<dataset>/k<K>.json".
func ArtifactName(dataset string, k int) string {
	return fmt.Sprintf("%s/k%d.json", dataset, k)
}

// SaveAnalysis encodes the analysis, applies the configured compression, and
// writes it to the artifact store. Saving the same dataset and K again
// overwrites the previous artifact. Returns the artifact name.
func (a *Analyzer) SaveAnalysis(ctx context.Context, an *Analysis) (string, error) {
	if a.opts.store == nil {
		return "", ErrNoArtifactStore
	}

	start := time.Now()
	name := ArtifactName(an.Dataset, an.K)

	data, err := a.codec.Marshal(an)
	if err != nil {
		a.metrics.RecordSave(0, time.Since(start), err)
		a.logger.LogSave(ctx, name, 0, err)
		return "", fmt.Errorf("clusterkit: encode analysis: %w", err)
	}

	payload, err := artifact.Compress(data, a.opts.compression)
	if err != nil {
		a.metrics.RecordSave(0, time.Since(start), err)
		a.logger.LogSave(ctx, name, 0, err)
		return "", fmt.Errorf("clusterkit: compress analysis: %w", err)
	}

	err = a.opts.store.Put(ctx, name, payload)
	a.metrics.RecordSave(len(payload), time.Since(start), err)
	a.logger.LogSave(ctx, name, len(payload), err)
	if err != nil {
		return "", fmt.Errorf("clusterkit: save analysis: %w", err)
	}
	return name, nil
}

// LoadAnalysis reads the named artifact back from the store. Returns
// artifact.ErrNotFound (wrapped) when no such artifact exists.
func (a *Analyzer) LoadAnalysis(ctx context.Context, name string) (*Analysis, error) {
	if a.opts.store == nil {
		return nil, ErrNoArtifactStore
	}

	start := time.Now()

	an, err := a.loadAnalysis(ctx, name)

	a.metrics.RecordLoad(time.Since(start), err)
	a.logger.LogLoad(ctx, name, err)
	return an, err
}

func (a *Analyzer) loadAnalysis(ctx context.Context, name string) (*Analysis, error) {
	payload, err := a.opts.store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("clusterkit: open analysis: %w", err)
	}

	data, err := artifact.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("clusterkit: decompress analysis: %w", err)
	}

	var an Analysis
	if err := a.codec.Unmarshal(data, &an); err != nil {
		return nil, fmt.Errorf("clusterkit: decode analysis: %w", err)
	}
	return &an, nil
}
