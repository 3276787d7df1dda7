package junction

import "github.com/paulmach/osm"

// degreeCount tracks how many qualifying ways start (or end) at a node.
// A missing key reads as zero; counts are only ever incremented.
type degreeCount map[osm.NodeID]int

func (d degreeCount) increment(n osm.NodeID) {
	d[n]++
}

func (d degreeCount) get(n osm.NodeID) int {
	return d[n]
}
