package registry

import (
	"context"
	"sort"
	"sync"
)

// MemoryRegistry is an in-memory Registry, primarily for tests and
// single-process analyses. It is safe for concurrent use.
type MemoryRegistry struct {
	mu   sync.RWMutex
	runs map[string]map[string]RunRecord // dataset -> id -> record
}

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{runs: make(map[string]map[string]RunRecord)}
}

// Record implements Registry.
func (r *MemoryRegistry) Record(_ context.Context, rec RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.runs[rec.Dataset]
	if !ok {
		byID = make(map[string]RunRecord)
		r.runs[rec.Dataset] = byID
	}
	if _, exists := byID[rec.ID]; exists {
		return ErrAlreadyRecorded
	}
	byID[rec.ID] = rec
	return nil
}

// Get implements Registry.
func (r *MemoryRegistry) Get(_ context.Context, dataset, id string) (*RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.runs[dataset][id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// List implements Registry.
func (r *MemoryRegistry) List(_ context.Context, dataset string) ([]RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]RunRecord, 0, len(r.runs[dataset]))
	for _, rec := range r.runs[dataset] {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}
