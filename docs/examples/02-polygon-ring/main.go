package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/toposnap/engine/pkg/toposnap"
)

func main() {
	topo, err := toposnap.NewMemTopology([]toposnap.ReferenceEdge{
		{ID: "parcel-boundary", Coords: []toposnap.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}},
	})
	if err != nil {
		log.Fatal(err)
	}

	ring := []toposnap.Coord{
		{X: 0, Y: 0}, {X: 3, Y: 0.1}, {X: 7, Y: -0.2}, {X: 10, Y: 0},
		{X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	input := toposnap.NewPolygon([][]toposnap.Coord{ring})

	cfg := toposnap.Config{
		ToleranceSnap:    0,
		ToleranceRemoval: 0.5,
		Iterate:          true,
		Progress: func(n int) {
			fmt.Printf("finished a ring with %d vertices\n", n)
		},
	}

	out, err := toposnap.Snap(context.Background(), topo, input, cfg)
	if err != nil {
		var bounds *toposnap.BoundsExceeded
		if errors.As(err, &bounds) {
			log.Fatalf("snap did not converge: %v", bounds)
		}
		log.Fatal(err)
	}

	fmt.Printf("exterior ring now has %d vertices\n", len(out.Rings[0]))
}
