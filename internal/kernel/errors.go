package kernel

import "fmt"

// MutationFailure reports an out-of-range insert or remove against a
// point array. Callers of Kernel never pass a bad index deliberately;
// seeing this means the caller computed an index incorrectly.
type MutationFailure struct {
	Op         string
	Index, Len int
}

func (e *MutationFailure) Error() string {
	return fmt.Sprintf("kernel: %s at index %d out of range for length %d", e.Op, e.Index, e.Len)
}
