package splitmerge

import "github.com/glaslos/splitmerge/zigzag"

// A Contribution is what one segment adds to the result.
type Contribution struct {
	Segment

	// Trap is set for a length-2 segment that neither partition cuts
	// in the middle. It needs no operations and is left out of the count.
	Trap bool

	Operations int    // Len-1, or 0 for a trap
	Orderings  uint64 // valid orderings of the segment's own operations
}

// trap reports whether s is a length-2 segment with no interior cut.
func (s Segment) trap(a, b Cuts) bool {
	return s.Len == 2 && !a[s.Start+1] && !b[s.Start+1]
}

// contribute costs a single segment. Its Len-1 operations must be ordered
// so that every even-numbered one comes after its odd-numbered neighbours;
// there are E_{Len-1} such orderings, the zigzag number.
func contribute(s Segment, a, b Cuts, tab *zigzag.Table) Contribution {
	if s.trap(a, b) {
		return Contribution{Segment: s, Trap: true, Orderings: 1}
	}
	ops := s.Len - 1
	return Contribution{Segment: s, Operations: ops, Orderings: tab.Number(ops)}
}
