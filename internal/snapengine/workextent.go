package snapengine

import (
	"context"

	"github.com/toposnap/engine/internal/kernel"
)

// WorkExtentCache lazily fetches and caches the reference edges within
// the expanded bounding box of the point array currently being snapped.
// One cache instance is scoped to exactly one point array; call Reset
// before reusing it for another.
type WorkExtentCache struct {
	store     EdgeStore
	kernel    kernel.Kernel
	tolerance float64

	box     kernel.BBox
	edges   []ReferenceEdge
	fetched bool
}

// NewWorkExtentCache builds a cache over store, expanding every bbox
// query by tolerance before it reaches the store.
func NewWorkExtentCache(store EdgeStore, k kernel.Kernel, tolerance float64) *WorkExtentCache {
	return &WorkExtentCache{store: store, kernel: k, tolerance: tolerance}
}

// Reset recomputes the work extent for pa and invalidates any cached
// edges, so the next call to Edges re-fetches.
func (c *WorkExtentCache) Reset(pa *kernel.PointArray) {
	c.box = c.kernel.BBoxOf(pa.Points).Expand(c.tolerance)
	c.edges = nil
	c.fetched = false
}

// Edges returns the cached reference edges within the current work
// extent, fetching them from the backing EdgeStore on first use.
func (c *WorkExtentCache) Edges(ctx context.Context) ([]ReferenceEdge, error) {
	if c.fetched {
		return c.edges, nil
	}
	edges, err := c.store.EdgesWithinBox(ctx, c.box)
	if err != nil {
		return nil, &BackendFailure{Message: "EdgesWithinBox", Cause: err}
	}
	c.edges = edges
	c.fetched = true
	return c.edges, nil
}

// Box returns the current expanded work extent.
func (c *WorkExtentCache) Box() kernel.BBox { return c.box }

// Release hands the currently cached edges back to the backing store.
func (c *WorkExtentCache) Release() {
	if c.fetched {
		c.store.ReleaseEdges(c.edges)
	}
}
