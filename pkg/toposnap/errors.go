package toposnap

import "github.com/toposnap/engine/internal/snapengine"

// BackendFailure is returned when a Topology's EdgesWithinBox call
// fails.
type BackendFailure = snapengine.BackendFailure

// KernelFailure reports a failed geometry predicate. The kernel's
// predicates do not return errors, so Snap never returns this type.
type KernelFailure = snapengine.KernelFailure

// MutationFailure is returned when the engine refuses an insert or
// remove against the geometry under snap. Seeing this indicates a bug
// in the engine, not in caller input.
type MutationFailure = snapengine.MutationFailure

// BoundsExceeded is returned when a point array's addition/removal
// cycle fails to reach a fixpoint within the engine's defensive
// iteration cap.
type BoundsExceeded = snapengine.BoundsExceeded
