package snapengine

import (
	"context"

	"github.com/toposnap/engine/internal/kernel"
)

// RemovalPhase walks the interior vertices of pa (every point except the
// first and last) in index order. For each, it finds the globally
// closest segment across every cached reference edge — ties broken by
// whichever segment was encountered first — and, if that distance is
// within toleranceRemoval and the vertex does not project exactly onto
// one of that segment's own endpoints (a junction it must not erase), it
// deletes the vertex. Deleting shifts every later index down by one, so
// the same index is re-examined rather than advancing past it. It
// returns the number of vertices removed.
//
// Callers should skip calling RemovalPhase entirely when toleranceRemoval
// is negative, matching the "disabled" reading of a negative tolerance.
func RemovalPhase(ctx context.Context, cache *WorkExtentCache, k kernel.Kernel, pa *kernel.PointArray, toleranceRemoval float64) (int, error) {
	edges, err := cache.Edges(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for i := 1; i < len(pa.Points)-1; i++ {
		v := pa.Points[i]
		found, segA, segB, dist := closestAcrossEdges(k, edges, v)
		if !found || dist > toleranceRemoval {
			continue
		}
		proj := k.ClosestPointOnSegment(v, segA, segB)
		if k.PointEqual(proj, segA) || k.PointEqual(proj, segB) {
			continue
		}
		if err := k.RemovePoint(pa, i); err != nil {
			return removed, &MutationFailure{Op: "remove", Index: i, Len: len(pa.Points)}
		}
		removed++
		i--
	}
	return removed, nil
}

// closestAcrossEdges finds the single closest segment to v across every
// segment of every edge, breaking ties by first-encountered-wins (a
// strict less-than comparison, never less-than-or-equal).
func closestAcrossEdges(k kernel.Kernel, edges []ReferenceEdge, v kernel.Point) (found bool, a, b kernel.Point, dist float64) {
	best := false
	var bestDist float64
	var bestA, bestB kernel.Point
	for _, e := range edges {
		for i := 0; i+1 < len(e.Points); i++ {
			d := k.DistancePointSegment(v, e.Points[i], e.Points[i+1])
			if !best || d < bestDist {
				best = true
				bestDist = d
				bestA, bestB = e.Points[i], e.Points[i+1]
			}
		}
	}
	return best, bestA, bestB, bestDist
}
