// Package kernel implements the planar geometric primitives the snapping
// engine is built on: point/segment distance, clamped projection, bit-exact
// equality, bounding boxes, and point-array mutation.
package kernel

import (
	"math"
	"sort"

	"github.com/blevesearch/geo/r1"
	"github.com/blevesearch/geo/r2"
)

// Point is a single coordinate in a point array. Z and M are carried
// through inserts and clones but never consulted by distance, projection,
// equality, or coverage predicates, which operate on X/Y only.
type Point struct {
	V    r2.Vector
	Z, M float64
	HasZ bool
	HasM bool
}

// NewXY builds a Point with only X/Y set.
func NewXY(x, y float64) Point {
	return Point{V: r2.Vector{X: x, Y: y}}
}

// BBox is an axis-aligned bounding box, one r1.Interval per axis.
type BBox struct {
	X, Y r1.Interval
}

// Empty reports whether the box contains no points.
func (b BBox) Empty() bool { return b.X.IsEmpty() || b.Y.IsEmpty() }

// Expand returns b grown by r on every side. Negative r shrinks it.
func (b BBox) Expand(r float64) BBox {
	return BBox{X: b.X.Expanded(r), Y: b.Y.Expanded(r)}
}

// Intersects reports whether b and o share any point.
func (b BBox) Intersects(o BBox) bool {
	return b.X.Intersects(o.X) && b.Y.Intersects(o.Y)
}

// Union returns the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return BBox{
		X: r1.Interval{Lo: math.Min(b.X.Lo, o.X.Lo), Hi: math.Max(b.X.Hi, o.X.Hi)},
		Y: r1.Interval{Lo: math.Min(b.Y.Lo, o.Y.Lo), Hi: math.Max(b.Y.Hi, o.Y.Hi)},
	}
}

// PointArray is a mutable ordered sequence of points, the unit both the
// Addition and Removal phases operate on.
type PointArray struct {
	Points []Point
}

// Clone returns a deep copy.
func (pa *PointArray) Clone() *PointArray {
	out := make([]Point, len(pa.Points))
	copy(out, pa.Points)
	return &PointArray{Points: out}
}

// Len returns the number of points.
func (pa *PointArray) Len() int { return len(pa.Points) }

// Kernel is the set of geometric predicates the snapping engine treats as
// an external collaborator. Default is the reference implementation; a
// caller embedding this engine in a system with its own geometry library
// can substitute an implementation backed by it.
type Kernel interface {
	// DistancePointSegment returns the shortest distance from p to the
	// closed segment [a,b].
	DistancePointSegment(p, a, b Point) float64
	// ClosestPointOnSegment returns the projection of p onto [a,b],
	// clamped to the segment.
	ClosestPointOnSegment(p, a, b Point) Point
	// PointEqual reports bit-exact X/Y equality.
	PointEqual(p, q Point) bool
	// BBoxOf returns the bounding box of pts. Empty for an empty slice.
	BBoxOf(pts []Point) BBox
	// Covers reports whether every point of the closed segment [a,b] lies
	// on the point-set of edge: the union of edge segments collinear with
	// [a,b] must span [a,b] end to end, with no gap. A handful of
	// endpoints matching edge vertices is not enough — the whole segment
	// has to ride the edge's line for its entire length.
	Covers(edge []Point, a, b Point) bool
	// InsertPoint inserts pt so it becomes index i of pa.Points.
	InsertPoint(pa *PointArray, i int, pt Point) error
	// RemovePoint removes the point at index i of pa.Points.
	RemovePoint(pa *PointArray, i int) error
}

// Default is the r1/r2-backed reference Kernel implementation.
type Default struct{}

var _ Kernel = Default{}

func (Default) DistancePointSegment(p, a, b Point) float64 {
	_, d := closest(p, a, b)
	return d
}

func (Default) ClosestPointOnSegment(p, a, b Point) Point {
	c, _ := closest(p, a, b)
	return c
}

// closest projects p onto segment [a,b], clamped to [0,1], and returns the
// resulting point plus its distance to p.
func closest(p, a, b Point) (Point, float64) {
	ab := b.V.Sub(a.V)
	denom := ab.Dot(ab)
	var t float64
	if denom > 0 {
		t = p.V.Sub(a.V).Dot(ab) / denom
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	proj := a.V.Add(ab.Mul(t))
	d := p.V.Sub(proj).Norm()
	return Point{V: proj}, d
}

func (Default) PointEqual(p, q Point) bool {
	return p.V.Equals(q.V)
}

func (Default) BBoxOf(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{X: r1.EmptyInterval(), Y: r1.EmptyInterval()}
	}
	box := BBox{
		X: r1.IntervalFromPoint(pts[0].V.X),
		Y: r1.IntervalFromPoint(pts[0].V.Y),
	}
	for _, p := range pts[1:] {
		box = box.Union(BBox{
			X: r1.IntervalFromPoint(p.V.X),
			Y: r1.IntervalFromPoint(p.V.Y),
		})
	}
	return box
}

// pointOnSegment reports whether p lies on the closed segment [a,b], to
// within a tight floating-point epsilon, via the standard collinearity +
// bounding-box test: cross product near zero and p's coordinates within
// the segment's bbox.
func pointOnSegment(p, a, b Point) bool {
	const eps = 1e-9
	ab := b.V.Sub(a.V)
	ap := p.V.Sub(a.V)
	cross := ab.Cross(ap)
	if math.Abs(cross) > eps*math.Max(1, ab.Norm()*ap.Norm()) {
		return false
	}
	minX, maxX := math.Min(a.V.X, b.V.X), math.Max(a.V.X, b.V.X)
	minY, maxY := math.Min(a.V.Y, b.V.Y), math.Max(a.V.Y, b.V.Y)
	return p.V.X >= minX-eps && p.V.X <= maxX+eps && p.V.Y >= minY-eps && p.V.Y <= maxY+eps
}

// run is a closed sub-interval of the parameter t along [a,b], t=0 at a
// and t=1 at b, contributed by one edge segment collinear with [a,b].
type run struct{ lo, hi float64 }

func (d Default) Covers(edge []Point, a, b Point) bool {
	if len(edge) < 2 {
		return false
	}
	const eps = 1e-9
	ab := b.V.Sub(a.V)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		for i := 0; i+1 < len(edge); i++ {
			if pointOnSegment(a, edge[i], edge[i+1]) {
				return true
			}
		}
		return false
	}

	collinear := func(v r2.Vector) bool {
		return math.Abs(ab.Cross(v)) <= eps*math.Max(1, ab.Norm()*math.Max(1, v.Norm()))
	}

	var runs []run
	for i := 0; i+1 < len(edge); i++ {
		p, q := edge[i].V.Sub(a.V), edge[i+1].V.Sub(a.V)
		if !collinear(p) || !collinear(q) {
			continue
		}
		tp, tq := p.Dot(ab)/lenSq, q.Dot(ab)/lenSq
		lo, hi := math.Min(tp, tq), math.Max(tp, tq)
		lo, hi = math.Max(lo, 0), math.Min(hi, 1)
		if hi > lo-eps {
			runs = append(runs, run{lo: lo, hi: hi})
		}
	}
	if len(runs) == 0 {
		return false
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].lo < runs[j].lo })
	covered := 0.0
	for _, r := range runs {
		if r.lo > covered+eps {
			return false
		}
		if r.hi > covered {
			covered = r.hi
		}
	}
	return covered >= 1-eps
}

func (Default) InsertPoint(pa *PointArray, i int, pt Point) error {
	if i < 0 || i > len(pa.Points) {
		return &MutationFailure{Op: "insert", Index: i, Len: len(pa.Points)}
	}
	pa.Points = append(pa.Points, Point{})
	copy(pa.Points[i+1:], pa.Points[i:])
	pa.Points[i] = pt
	return nil
}

func (Default) RemovePoint(pa *PointArray, i int) error {
	if i < 0 || i >= len(pa.Points) {
		return &MutationFailure{Op: "remove", Index: i, Len: len(pa.Points)}
	}
	pa.Points = append(pa.Points[:i], pa.Points[i+1:]...)
	return nil
}
