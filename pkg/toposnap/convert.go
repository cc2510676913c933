package toposnap

import (
	"fmt"

	"github.com/toposnap/engine/internal/kernel"
	"github.com/toposnap/engine/internal/snapengine"
)

// toEngine converts a public Geometry tree into the engine's internal
// representation, deep-copying every coordinate so the original input is
// never mutated by a subsequent Snap call.
func toEngine(g *Geometry) (*snapengine.Geometry, error) {
	if g == nil {
		return nil, nil
	}
	switch g.Type {
	case Point:
		if len(g.Coords) != 1 {
			return nil, fmt.Errorf("toposnap: Point geometry must have exactly one coordinate, got %d", len(g.Coords))
		}
		p := toKernelPoint(g.Coords[0])
		return &snapengine.Geometry{Kind: snapengine.KindPoint, Point: &p}, nil

	case LineString:
		return &snapengine.Geometry{Kind: snapengine.KindLineString, Line: toPointArray(g.Coords)}, nil

	case Polygon:
		eng := &snapengine.Geometry{Kind: snapengine.KindPolygon}
		for _, ring := range g.Rings {
			eng.Rings = append(eng.Rings, toPointArray(ring))
		}
		return eng, nil

	case MultiPoint:
		return toEngineParts(g, snapengine.KindMultiPoint)
	case MultiLineString:
		return toEngineParts(g, snapengine.KindMultiLineString)
	case MultiPolygon:
		return toEngineParts(g, snapengine.KindMultiPolygon)
	case GeometryCollection:
		return toEngineParts(g, snapengine.KindCollection)

	default:
		return nil, fmt.Errorf("toposnap: unknown geometry type %v", g.Type)
	}
}

func toEngineParts(g *Geometry, kind snapengine.GeometryKind) (*snapengine.Geometry, error) {
	eng := &snapengine.Geometry{Kind: kind}
	for _, part := range g.Geometries {
		converted, err := toEngine(part)
		if err != nil {
			return nil, err
		}
		eng.Parts = append(eng.Parts, converted)
	}
	return eng, nil
}

func toKernelPoint(c Coord) kernel.Point {
	return kernel.Point{V: kernel.NewXY(c.X, c.Y).V, Z: c.Z, M: c.M, HasZ: c.HasZ, HasM: c.HasM}
}

func toPointArray(coords []Coord) *kernel.PointArray {
	pts := make([]kernel.Point, len(coords))
	for i, c := range coords {
		pts[i] = toKernelPoint(c)
	}
	return &kernel.PointArray{Points: pts}
}

// fromEngine converts the engine's internal tree back into the public
// Geometry shape, mirroring the Type/Coords/Rings/Geometries structure
// the original g had.
func fromEngine(eng *snapengine.Geometry) *Geometry {
	if eng == nil {
		return nil
	}
	switch eng.Kind {
	case snapengine.KindPoint:
		return &Geometry{Type: Point, Coords: []Coord{fromKernelPoint(*eng.Point)}}
	case snapengine.KindLineString:
		return &Geometry{Type: LineString, Coords: fromPointArray(eng.Line)}
	case snapengine.KindPolygon:
		g := &Geometry{Type: Polygon}
		for _, r := range eng.Rings {
			g.Rings = append(g.Rings, fromPointArray(r))
		}
		return g
	case snapengine.KindMultiPoint:
		return fromEngineParts(eng, MultiPoint)
	case snapengine.KindMultiLineString:
		return fromEngineParts(eng, MultiLineString)
	case snapengine.KindMultiPolygon:
		return fromEngineParts(eng, MultiPolygon)
	default:
		return fromEngineParts(eng, GeometryCollection)
	}
}

func fromEngineParts(eng *snapengine.Geometry, t GeometryType) *Geometry {
	g := &Geometry{Type: t}
	for _, part := range eng.Parts {
		g.Geometries = append(g.Geometries, fromEngine(part))
	}
	return g
}

func fromKernelPoint(p kernel.Point) Coord {
	return Coord{X: p.V.X, Y: p.V.Y, Z: p.Z, M: p.M, HasZ: p.HasZ, HasM: p.HasM}
}

func fromPointArray(pa *kernel.PointArray) []Coord {
	out := make([]Coord, len(pa.Points))
	for i, p := range pa.Points {
		out[i] = fromKernelPoint(p)
	}
	return out
}
