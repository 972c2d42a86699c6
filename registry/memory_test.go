package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("record and get", func(t *testing.T) {
		r := NewMemoryRegistry()

		rec := RunRecord{
			ID:         "run-1",
			Dataset:    "penguins",
			K:          3,
			Iterations: 12,
			Converged:  true,
			WCSS:       9876.5,
			Silhouette: 0.61,
			CreatedAt:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		}
		require.NoError(t, r.Record(ctx, rec))

		got, err := r.Get(ctx, "penguins", "run-1")
		require.NoError(t, err)
		assert.Equal(t, rec, *got)
	})

	t.Run("duplicate run id", func(t *testing.T) {
		r := NewMemoryRegistry()

		rec := RunRecord{ID: "run-1", Dataset: "penguins"}
		require.NoError(t, r.Record(ctx, rec))
		assert.ErrorIs(t, r.Record(ctx, rec), ErrAlreadyRecorded)
	})

	t.Run("same id on different datasets", func(t *testing.T) {
		r := NewMemoryRegistry()

		require.NoError(t, r.Record(ctx, RunRecord{ID: "run-1", Dataset: "penguins"}))
		require.NoError(t, r.Record(ctx, RunRecord{ID: "run-1", Dataset: "iris"}))
	})

	t.Run("get missing", func(t *testing.T) {
		r := NewMemoryRegistry()

		_, err := r.Get(ctx, "penguins", "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list sorted by id", func(t *testing.T) {
		r := NewMemoryRegistry()

		require.NoError(t, r.Record(ctx, RunRecord{ID: "run-3", Dataset: "penguins", K: 4}))
		require.NoError(t, r.Record(ctx, RunRecord{ID: "run-1", Dataset: "penguins", K: 2}))
		require.NoError(t, r.Record(ctx, RunRecord{ID: "run-2", Dataset: "penguins", K: 3}))

		records, err := r.List(ctx, "penguins")
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "run-1", records[0].ID)
		assert.Equal(t, "run-2", records[1].ID)
		assert.Equal(t, "run-3", records[2].ID)
	})

	t.Run("list empty dataset", func(t *testing.T) {
		r := NewMemoryRegistry()

		records, err := r.List(ctx, "unknown")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
