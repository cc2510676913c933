package main

import (
	"context"
	"fmt"
	"log"

	"github.com/toposnap/engine/pkg/toposnap"
)

func main() {
	topo, err := toposnap.NewMemTopology([]toposnap.ReferenceEdge{
		{ID: "shoreline", Coords: []toposnap.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{ID: "jetty", Coords: []toposnap.Coord{{X: 5, Y: 0.2}, {X: 5, Y: 5}}},
	})
	if err != nil {
		log.Fatal(err)
	}

	input := toposnap.NewLineString([]toposnap.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}})

	cfg := toposnap.DefaultConfig()
	cfg.ToleranceSnap = 1.0

	out, err := toposnap.Snap(context.Background(), topo, input, cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("snapped line has %d vertices\n", len(out.Coords))
	for _, c := range out.Coords {
		fmt.Printf("  (%.2f, %.2f)\n", c.X, c.Y)
	}

	stats := topo.Stats()
	fmt.Printf("topology: %d edges across %d components\n", stats.EdgeCount, stats.ComponentCount)
}
