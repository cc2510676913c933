package snapengine

import (
	"context"

	"github.com/toposnap/engine/internal/kernel"
)

// AdditionPassResult reports the outcome of one Addition Phase pass.
type AdditionPassResult struct {
	Snapped bool
}

// additionPass runs a single Addition Phase pass: it walks the sorted
// candidate list and, on the first candidate that is neither an
// endpoint-coincidence nor already covered, inserts the candidate's
// original vertex into pa and returns immediately. It does not continue
// scanning the remaining candidates once one is accepted.
func additionPass(k kernel.Kernel, pa *kernel.PointArray, candidates []Candidate, oracle *CoverageOracle) (AdditionPassResult, error) {
	for _, cand := range candidates {
		pts := pa.Points
		if cand.SegNo < 0 || cand.SegNo+1 >= len(pts) {
			continue
		}
		a, b := pts[cand.SegNo], pts[cand.SegNo+1]
		proj := k.ClosestPointOnSegment(cand.Pt, a, b)

		// Endpoint-coincidence veto is checked before the coverage
		// check: a candidate that projects exactly onto an existing
		// vertex is never a new snap point, covered or not.
		if k.PointEqual(proj, a) || k.PointEqual(proj, b) {
			continue
		}
		if oracle.Covered(a, b) {
			continue
		}

		if err := k.InsertPoint(pa, cand.SegNo+1, cand.Pt); err != nil {
			return AdditionPassResult{}, &MutationFailure{Op: "insert", Index: cand.SegNo + 1, Len: len(pa.Points)}
		}
		return AdditionPassResult{Snapped: true}, nil
	}
	return AdditionPassResult{}, nil
}

// AdditionPhase runs addition passes to fixpoint: it keeps going only
// while cfg.Iterate is true and the previous pass produced a snap. It
// recomputes candidates from the current (possibly just-mutated) point
// array on every pass, since inserting a vertex changes segment
// boundaries and can invalidate earlier candidates' segment indices.
func AdditionPhase(ctx context.Context, cache *WorkExtentCache, k kernel.Kernel, pa *kernel.PointArray, toleranceSnap float64, iterate bool) error {
	for {
		edges, err := cache.Edges(ctx)
		if err != nil {
			return err
		}
		candidates, err := FindCandidates(ctx, cache, k, pa, toleranceSnap)
		if err != nil {
			return err
		}
		oracle := NewCoverageOracle(k, edges)
		result, err := additionPass(k, pa, candidates, oracle)
		if err != nil {
			return err
		}
		if !result.Snapped || !iterate {
			return nil
		}
	}
}
