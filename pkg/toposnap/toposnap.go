// Package toposnap aligns the vertices of an input geometry with a
// reference topology of non-crossing edges: it inserts vertices where
// the input passes near a reference edge's own vertices within a snap
// tolerance, and optionally removes input vertices that have drifted
// close enough to the reference topology to be redundant.
package toposnap

import (
	"context"
	"fmt"

	"github.com/toposnap/engine/internal/kernel"
	"github.com/toposnap/engine/internal/snapengine"
)

// Snap aligns geom's vertices against topology according to cfg and
// returns a new geometry; the input is never modified. On any failure it
// returns a nil geometry and a non-nil error — there is no partial
// output.
func Snap(ctx context.Context, topology Topology, geom *Geometry, cfg Config) (*Geometry, error) {
	if topology == nil {
		return nil, fmt.Errorf("toposnap: topology must not be nil")
	}
	if geom == nil {
		return nil, fmt.Errorf("toposnap: geometry must not be nil")
	}

	working, err := toEngine(geom)
	if err != nil {
		return nil, fmt.Errorf("toposnap: converting input geometry: %w", err)
	}

	driver := &snapengine.Driver{
		Kernel: kernel.Default{},
		Store:  topology,
	}
	engineCfg := snapengine.Config{
		ToleranceSnap:    cfg.ToleranceSnap,
		ToleranceRemoval: cfg.ToleranceRemoval,
		Iterate:          cfg.Iterate,
		OnPointArray:     cfg.Progress,
	}

	if err := driver.Snap(ctx, working, engineCfg); err != nil {
		return nil, err
	}

	return fromEngine(working), nil
}
