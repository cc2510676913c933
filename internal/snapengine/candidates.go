package snapengine

import (
	"context"
	"sort"

	"github.com/toposnap/engine/internal/kernel"
)

// FindCandidates scans every vertex of every edge visible through cache
// and, for each, finds the closest segment of pa. A vertex becomes a
// candidate when that distance is within toleranceSnap. Ties for closest
// segment are broken by the smallest segment index (the first one
// encountered walking pa left to right). The returned slice is sorted by
// (Dist, Pt.X, Pt.Y) ascending — the engine's one externally observable
// ordering contract.
func FindCandidates(ctx context.Context, cache *WorkExtentCache, k kernel.Kernel, pa *kernel.PointArray, toleranceSnap float64) ([]Candidate, error) {
	edges, err := cache.Edges(ctx)
	if err != nil {
		return nil, err
	}

	box := cache.Box()
	var out []Candidate
	for _, edge := range edges {
		for _, v := range edge.Points {
			if !box.X.Contains(v.V.X) || !box.Y.Contains(v.V.Y) {
				continue
			}
			segNo, dist, ok := closestSegment(k, pa, v)
			if !ok || dist > toleranceSnap {
				continue
			}
			out = append(out, Candidate{Pt: v, SegNo: segNo, Dist: dist})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Dist != b.Dist {
			return a.Dist < b.Dist
		}
		if a.Pt.V.X != b.Pt.V.X {
			return a.Pt.V.X < b.Pt.V.X
		}
		return a.Pt.V.Y < b.Pt.V.Y
	})
	return out, nil
}

// closestSegment finds the segment of pa closest to v, breaking ties by
// the smallest segment index. Returns ok=false if pa has fewer than two
// points.
func closestSegment(k kernel.Kernel, pa *kernel.PointArray, v kernel.Point) (segNo int, dist float64, ok bool) {
	pts := pa.Points
	if len(pts) < 2 {
		return 0, 0, false
	}
	best := -1
	var bestDist float64
	for i := 0; i+1 < len(pts); i++ {
		d := k.DistancePointSegment(v, pts[i], pts[i+1])
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist, true
}
