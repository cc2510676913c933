package snapengine

import (
	"context"

	"github.com/toposnap/engine/internal/kernel"
)

// EdgeStore is the reference topology's query surface: everything the
// engine needs to know about which reference edges exist near a given
// area. Edge ordering within a result is implementation-defined; the
// engine never depends on it (see FindCandidates, which always sorts).
type EdgeStore interface {
	EdgesWithinBox(ctx context.Context, box kernel.BBox) ([]ReferenceEdge, error)
	// ReleaseEdges returns edges obtained from EdgesWithinBox. Idempotent;
	// a no-op store may ignore it.
	ReleaseEdges(edges []ReferenceEdge)
}
