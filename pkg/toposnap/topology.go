package toposnap

import (
	"context"
	"fmt"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/toposnap/engine/internal/kernel"
	"github.com/toposnap/engine/internal/snapengine"
	"github.com/toposnap/engine/internal/topograph"
)

// Topology is the reference topology a Snap call aligns an input
// geometry against: a set of non-crossing edges with shared endpoints,
// queryable by bounding box.
type Topology interface {
	snapengine.EdgeStore
}

// edgeEntry adapts a ReferenceEdge to rtreego.Spatial.
type edgeEntry struct {
	edge   snapengine.ReferenceEdge
	bounds rtreego.Rect
}

func (e edgeEntry) Bounds() rtreego.Rect { return e.bounds }

// epsilon is the side length given to a zero-length side of a degenerate
// (single-point or exactly axis-aligned zero-width) bounding box, so rtreego,
// which rejects zero-length sides, always receives a valid rectangle.
const epsilon = 1e-9

func edgeRect(k kernel.Kernel, edge snapengine.ReferenceEdge) (rtreego.Rect, error) {
	box := k.BBoxOf(edge.Points)
	width := box.X.Hi - box.X.Lo
	height := box.Y.Hi - box.Y.Lo
	if width <= 0 {
		width = epsilon
	}
	if height <= 0 {
		height = epsilon
	}
	point := rtreego.Point{box.X.Lo, box.Y.Lo}
	return rtreego.NewRect(point, []float64{width, height})
}

// MemTopology is an in-memory, rtreego-indexed Topology: the reference
// implementation of an EdgeStore, suitable for tests and for callers who
// already hold the whole reference topology in memory. It is not a
// persistence layer; a host system backing a topology with a database
// implements Topology directly instead.
type MemTopology struct {
	kernel kernel.Kernel

	mu    sync.RWMutex
	rtree *rtreego.Rtree
	byID  map[string]snapengine.ReferenceEdge
}

// NewMemTopology builds a MemTopology over edges, indexing them with an
// R-tree for EdgesWithinBox queries.
func NewMemTopology(edges []ReferenceEdge) (*MemTopology, error) {
	k := kernel.Default{}
	engineEdges := referenceEdgesToEngine(edges)
	t := &MemTopology{
		kernel: k,
		rtree:  rtreego.NewTree(2, 25, 50),
		byID:   make(map[string]snapengine.ReferenceEdge, len(engineEdges)),
	}
	for _, e := range engineEdges {
		if len(e.Points) < 2 {
			return nil, fmt.Errorf("toposnap: reference edge %q has fewer than two points", e.ID)
		}
		rect, err := edgeRect(k, e)
		if err != nil {
			return nil, fmt.Errorf("toposnap: building bounds for edge %q: %w", e.ID, err)
		}
		t.rtree.Insert(edgeEntry{edge: e, bounds: rect})
		t.byID[e.ID] = e
	}
	return t, nil
}

// EdgesWithinBox implements snapengine.EdgeStore.
func (t *MemTopology) EdgesWithinBox(ctx context.Context, box kernel.BBox) ([]snapengine.ReferenceEdge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	width := box.X.Hi - box.X.Lo
	height := box.Y.Hi - box.Y.Lo
	if width <= 0 {
		width = epsilon
	}
	if height <= 0 {
		height = epsilon
	}
	rect, err := rtreego.NewRect(rtreego.Point{box.X.Lo, box.Y.Lo}, []float64{width, height})
	if err != nil {
		return nil, fmt.Errorf("toposnap: building query rect: %w", err)
	}

	results := t.rtree.SearchIntersect(rect)
	edges := make([]snapengine.ReferenceEdge, 0, len(results))
	for _, r := range results {
		edges = append(edges, r.(edgeEntry).edge)
	}
	return edges, nil
}

// ReleaseEdges implements snapengine.EdgeStore. MemTopology holds no
// per-query resources, so this is a no-op.
func (t *MemTopology) ReleaseEdges(edges []snapengine.ReferenceEdge) {}

// Stats reports connectivity diagnostics about the topology: how many
// distinct edge endpoints it has, how many edges, and how many
// connected components they form. A topology description whose edges
// never share an endpoint reports one component per edge.
func (t *MemTopology) Stats() topograph.Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	edges := make([]snapengine.ReferenceEdge, 0, len(t.byID))
	for _, e := range t.byID {
		edges = append(edges, e)
	}
	return topograph.Analyze(edges)
}
