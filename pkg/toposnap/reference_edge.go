package toposnap

import (
	"github.com/toposnap/engine/internal/kernel"
	"github.com/toposnap/engine/internal/snapengine"
)

// ReferenceEdge is one edge of a reference topology: a stable identifier
// plus its ordered vertex sequence (at least two points).
type ReferenceEdge struct {
	ID     string
	Coords []Coord
}

func (e ReferenceEdge) toEngine() snapengine.ReferenceEdge {
	pts := make([]kernel.Point, len(e.Coords))
	for i, c := range e.Coords {
		pts[i] = toKernelPoint(c)
	}
	return snapengine.ReferenceEdge{ID: e.ID, Points: pts}
}

// referenceEdgesToEngine converts a slice of public ReferenceEdge values into
// the engine's internal representation, for building a MemTopology.
func referenceEdgesToEngine(edges []ReferenceEdge) []snapengine.ReferenceEdge {
	out := make([]snapengine.ReferenceEdge, len(edges))
	for i, e := range edges {
		out[i] = e.toEngine()
	}
	return out
}
