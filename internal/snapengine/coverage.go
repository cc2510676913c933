package snapengine

import "github.com/toposnap/engine/internal/kernel"

// CoverageOracle decides whether a segment of the point array under snap
// is already wholly contained by some reference edge, so the Addition
// Phase can veto inserting a new vertex into an already-aligned segment.
// Results are cached per call, since the same segment can be asked about
// repeatedly within one Addition Phase pass.
type CoverageOracle struct {
	kernel kernel.Kernel
	edges  []ReferenceEdge
	cache  map[segKey]bool
}

type segKey struct {
	ax, ay, bx, by float64
}

// NewCoverageOracle builds an oracle over the given edges.
func NewCoverageOracle(k kernel.Kernel, edges []ReferenceEdge) *CoverageOracle {
	return &CoverageOracle{kernel: k, edges: edges, cache: make(map[segKey]bool)}
}

// Covered reports whether segment [a,b] is covered by any edge, first
// hit wins.
func (c *CoverageOracle) Covered(a, b kernel.Point) bool {
	key := segKey{a.V.X, a.V.Y, b.V.X, b.V.Y}
	if v, ok := c.cache[key]; ok {
		return v
	}
	covered := false
	for _, e := range c.edges {
		if c.kernel.Covers(e.Points, a, b) {
			covered = true
			break
		}
	}
	c.cache[key] = covered
	return covered
}
