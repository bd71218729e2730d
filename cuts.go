package splitmerge

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Cuts marks the cut positions of a partition of [0, L].
// It has length L+1; index i reports whether the partition cuts at i.
type Cuts []bool

// Mark accumulates deltas left to right and marks every running sum as a
// cut on a line of the given length. Position 0 is never marked.
//
// Mark returns an error if a delta is not positive or if the running sum
// passes length. The deltas need not add up to length.
func Mark(length int, deltas []int) (Cuts, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative line length %d", ErrInvalidInput, length)
	}
	if i := slices.IndexFunc(deltas, func(d int) bool { return d <= 0 }); i >= 0 {
		return nil, fmt.Errorf("%w: piece %d has non-positive length %d", ErrInvalidInput, i, deltas[i])
	}
	cuts := make(Cuts, length+1)
	head := 0
	for i, d := range deltas {
		head += d
		if head > length {
			return nil, fmt.Errorf("%w: piece %d ends at %d, past %d", ErrInvalidInput, i, head, length)
		}
		cuts[head] = true
	}
	return cuts, nil
}

// Positions returns the marked positions in increasing order.
func (c Cuts) Positions() []int {
	var ps []int
	for i, cut := range c {
		if cut {
			ps = append(ps, i)
		}
	}
	return ps
}
