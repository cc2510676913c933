package snapengine

import "github.com/toposnap/engine/internal/kernel"

// ReferenceEdge is one edge of the reference topology: a stable
// identifier plus its ordered vertex sequence.
type ReferenceEdge struct {
	ID     string
	Points []kernel.Point
}

// BBox returns the edge's bounding box.
func (e ReferenceEdge) BBox(k kernel.Kernel) kernel.BBox {
	return k.BBoxOf(e.Points)
}

// Candidate is a reference-edge vertex found within tolerance of some
// segment of the point array being snapped, plus the closest segment's
// index and the distance between them. SegNo is the index of the first
// point of that segment (segment i spans points[i] and points[i+1]).
type Candidate struct {
	Pt    kernel.Point
	SegNo int
	Dist  float64
}
