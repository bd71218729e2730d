package splitmerge

// A Segment is a maximal run of the line between two consecutive
// positions cut by both partitions.
type Segment struct {
	Start int // offset of the segment on the line
	Len   int
}

// Partition splits the line at every position where a and b both cut.
// Only these positions separate independent subproblems.
//
// a and b must have the same length. Segments are returned in line order;
// if both partitions cut at the end of the line their lengths sum to it.
func Partition(a, b Cuts) []Segment {
	if len(a) != len(b) {
		panic("cut arrays differ in length")
	}
	var segs []Segment
	open := 0
	for i := 1; i < len(a); i++ {
		if a[i] && b[i] {
			segs = append(segs, Segment{Start: open, Len: i - open})
			open = i
		}
	}
	return segs
}
