package snapengine

import "github.com/toposnap/engine/internal/kernel"

// GeometryKind discriminates the shape of a Geometry node.
type GeometryKind int

const (
	KindPoint GeometryKind = iota
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindCollection
)

// Geometry is the engine's internal geometry tree: a discriminated union
// mirroring the shapes the public API exposes, with point arrays in the
// mutable kernel.PointArray form the Addition and Removal phases expect.
// pkg/toposnap converts its own public Geometry tree to and from this
// shape around a call to Visit.
type Geometry struct {
	Kind  GeometryKind
	Point *kernel.Point     // KindPoint
	Line  *kernel.PointArray // KindLineString
	Rings []*kernel.PointArray // KindPolygon: exterior ring first
	Parts []*Geometry        // KindMultiPoint/MultiLineString/MultiPolygon/Collection
}

// Clone returns a deep copy of the tree, including every point array.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	out := &Geometry{Kind: g.Kind}
	if g.Point != nil {
		p := *g.Point
		out.Point = &p
	}
	if g.Line != nil {
		out.Line = g.Line.Clone()
	}
	for _, r := range g.Rings {
		out.Rings = append(out.Rings, r.Clone())
	}
	for _, p := range g.Parts {
		out.Parts = append(out.Parts, p.Clone())
	}
	return out
}

// Visit applies fn to every mutable point array reachable from g: a
// LineString's own points, each ring of a Polygon, and recursively every
// part of a Multi*/Collection geometry. Point geometries are left
// untouched, matching the reference algorithm's visitor, which only ever
// descends into line-bearing geometry.
func (g *Geometry) Visit(fn func(pa *kernel.PointArray) error) error {
	if g == nil {
		return nil
	}
	switch g.Kind {
	case KindLineString:
		return fn(g.Line)
	case KindPolygon:
		for _, r := range g.Rings {
			if err := fn(r); err != nil {
				return err
			}
		}
		return nil
	case KindMultiPoint, KindMultiLineString, KindMultiPolygon, KindCollection:
		for _, p := range g.Parts {
			if err := p.Visit(fn); err != nil {
				return err
			}
		}
		return nil
	default: // KindPoint
		return nil
	}
}
