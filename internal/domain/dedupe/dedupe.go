// Package dedupe tracks already-seen issue identifiers so each candidate
// is processed at most once per request.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen issue IDs. Implementations must be safe for
// concurrent use: retrieval may feed candidates from several goroutines.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id int64) bool

	// Size returns the current number of recorded IDs.
	Size() int
}

// inMemoryDeduper implements Deduper with a mutex-guarded map. Instances
// are request-scoped; there is no eviction.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[int64]struct{}
}

// New creates an empty in-memory deduper.
func New(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		seen: make(map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[id]; exists {
		return true
	}
	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
