package commands

import (
	"context"
	"sync"
)

type fetchEntry struct {
	generation int64
	cancel     context.CancelFunc
}

// fetchRegistry tracks the availability fetch in flight for each draft.
// Starting a newer fetch cancels the older one.
type fetchRegistry struct {
	mu      sync.Mutex
	entries map[string]fetchEntry
}

func newFetchRegistry() *fetchRegistry {
	return &fetchRegistry{entries: make(map[string]fetchEntry)}
}

func (r *fetchRegistry) begin(ctx context.Context, draftID string, generation int64) (context.Context, func()) {
	fetchCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if prev, ok := r.entries[draftID]; ok {
		prev.cancel()
	}
	r.entries[draftID] = fetchEntry{generation: generation, cancel: cancel}
	r.mu.Unlock()

	done := func() {
		r.mu.Lock()
		if cur, ok := r.entries[draftID]; ok && cur.generation == generation {
			delete(r.entries, draftID)
		}
		r.mu.Unlock()
		cancel()
	}
	return fetchCtx, done
}

func (r *fetchRegistry) cancel(draftID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.entries[draftID]; ok {
		cur.cancel()
		delete(r.entries, draftID)
	}
}

func (r *fetchRegistry) inFlight(draftID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[draftID]
	return ok
}
