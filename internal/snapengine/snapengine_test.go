package snapengine

import (
	"context"

	"github.com/toposnap/engine/internal/kernel"
)

// fakeStore is a minimal EdgeStore for tests: returns every edge whose
// bbox intersects the query box, computed with a plain linear scan.
type fakeStore struct {
	k     kernel.Kernel
	edges []ReferenceEdge
}

func (s *fakeStore) EdgesWithinBox(ctx context.Context, box kernel.BBox) ([]ReferenceEdge, error) {
	var out []ReferenceEdge
	for _, e := range s.edges {
		if e.BBox(s.k).Intersects(box) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeStore) ReleaseEdges(edges []ReferenceEdge) {}

func xy(x, y float64) kernel.Point { return kernel.NewXY(x, y) }

func line(pts ...kernel.Point) *kernel.PointArray {
	return &kernel.PointArray{Points: pts}
}
