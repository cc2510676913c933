package snapengine

import (
	"context"

	"github.com/toposnap/engine/internal/kernel"
)

// Config mirrors the public tolerance/iterate knobs the driver needs; it
// is a plain struct rather than the public toposnap.Config so this
// package has no dependency on pkg/toposnap.
type Config struct {
	ToleranceSnap    float64
	ToleranceRemoval float64
	Iterate          bool

	// OnPointArray, if non-nil, is called once after each point array
	// finishes its addition/removal rounds, with the number of points
	// it ended with.
	OnPointArray func(pointCount int)
}

// Driver runs the full snapping algorithm over a geometry tree.
type Driver struct {
	Kernel kernel.Kernel
	Store  EdgeStore
}

// outerIterationCap bounds the number of addition/removal rounds a
// single point array can go through before the driver gives up and
// reports BoundsExceeded, rather than looping forever on a pathological
// or contradictory topology. It is the size of the initial point array
// plus the size of the candidate pool (every vertex of every edge in the
// work extent) — enough rounds for every candidate to be inserted and
// then reconsidered for removal once, never less.
func outerIterationCap(pa *kernel.PointArray, edges []ReferenceEdge) int {
	pool := 0
	for _, e := range edges {
		pool += len(e.Points)
	}
	return len(pa.Points) + pool
}

// Snap mutates geom's point arrays in place according to cfg. Callers
// that must not mutate their input should clone before calling this; the
// public entry point in pkg/toposnap does so.
func (d *Driver) Snap(ctx context.Context, geom *Geometry, cfg Config) error {
	return geom.Visit(func(pa *kernel.PointArray) error {
		return d.snapPointArray(ctx, pa, cfg)
	})
}

func (d *Driver) snapPointArray(ctx context.Context, pa *kernel.PointArray, cfg Config) error {
	cache := NewWorkExtentCache(d.Store, d.Kernel, cfg.ToleranceSnap)
	cache.Reset(pa)
	defer cache.Release()

	edges, err := cache.Edges(ctx)
	if err != nil {
		return err
	}
	maxIterations := outerIterationCap(pa, edges)
	iterations := 0
	for {
		if err := AdditionPhase(ctx, cache, d.Kernel, pa, cfg.ToleranceSnap, cfg.Iterate); err != nil {
			return err
		}

		removed := 0
		if cfg.ToleranceRemoval >= 0 {
			var err error
			removed, err = RemovalPhase(ctx, cache, d.Kernel, pa, cfg.ToleranceRemoval)
			if err != nil {
				return err
			}
		}

		iterations++
		if !cfg.Iterate || removed == 0 {
			break
		}

		if iterations >= maxIterations {
			return &BoundsExceeded{Iterations: iterations, Cap: maxIterations}
		}
	}

	if cfg.OnPointArray != nil {
		cfg.OnPointArray(len(pa.Points))
	}
	return nil
}
