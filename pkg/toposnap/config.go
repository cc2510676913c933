package toposnap

// Config configures a single Snap call.
type Config struct {
	// ToleranceSnap is the maximum distance a reference-edge vertex may
	// be from a segment of the input geometry for the Addition Phase to
	// insert it there.
	ToleranceSnap float64

	// ToleranceRemoval is the maximum distance an interior vertex of the
	// input geometry may be from the reference topology for the Removal
	// Phase to delete it. A negative value disables the Removal Phase
	// entirely.
	ToleranceRemoval float64

	// Iterate, when true, repeats the addition/removal cycle for a given
	// point array until a full cycle makes no change.
	Iterate bool

	// Progress, if non-nil, is called once after each point array in the
	// input geometry finishes snapping, reporting how many points it
	// ended with.
	Progress func(pointCount int)
}

// DefaultConfig returns a Config with removal disabled and iteration on,
// leaving ToleranceSnap at the caller's responsibility to set.
func DefaultConfig() Config {
	return Config{
		ToleranceSnap:    0,
		ToleranceRemoval: -1,
		Iterate:          true,
	}
}
