// Package topograph models a reference topology's shared-endpoint
// structure as a planar graph, purely for diagnostics: it is never
// consulted by the snapping algorithm itself.
package topograph

import (
	"fmt"

	"github.com/katalvlaran/lvlath/graph"
	"github.com/toposnap/engine/internal/kernel"
	"github.com/toposnap/engine/internal/snapengine"
)

// Stats summarizes a reference topology's connectivity.
type Stats struct {
	VertexCount      int
	EdgeCount        int
	ComponentCount   int
	LargestComponent int
}

// vertexID keys a shared endpoint by its bit-exact coordinates, so two
// edges that share an endpoint collapse to one graph vertex.
func vertexID(p kernel.Point) string {
	return fmt.Sprintf("%v,%v", p.V.X, p.V.Y)
}

// Build constructs an undirected, unweighted graph from edges: one
// vertex per distinct endpoint, one graph edge per reference edge
// connecting its first and last point.
func Build(edges []snapengine.ReferenceEdge) *graph.Graph {
	g := graph.NewGraph(false, false)
	for _, e := range edges {
		if len(e.Points) < 2 {
			continue
		}
		from := vertexID(e.Points[0])
		to := vertexID(e.Points[len(e.Points)-1])
		g.AddEdge(from, to, 1)
	}
	return g
}

// Analyze runs BFS from every undiscovered vertex to count connected
// components, returning summary Stats for the topology edges supplied.
func Analyze(edges []snapengine.ReferenceEdge) Stats {
	g := Build(edges)
	vertices := g.VerticesMap()

	stats := Stats{VertexCount: len(vertices), EdgeCount: len(edges)}
	visited := make(map[string]bool, len(vertices))
	for id := range vertices {
		if visited[id] {
			continue
		}
		result, err := g.BFS(id, nil)
		if err != nil {
			continue
		}
		stats.ComponentCount++
		if len(result.Order) > stats.LargestComponent {
			stats.LargestComponent = len(result.Order)
		}
		for _, v := range result.Order {
			visited[v.ID] = true
		}
	}
	return stats
}
