// Package junction finds waterway ways whose both endpoints are junction
// nodes. A node is a junction when exactly two ways meet there end-to-end
// with the same orientation: two way starts and no way ends, or two way
// ends and no way starts. Ways between two such nodes are candidates for
// merging (or for fixing a reversed flow direction) in an editor.
//
// A true multi-way branch point (three or more ways sharing a node) is
// deliberately not a junction under this rule; the check is about
// directional consistency of pairs, not general branching.
package junction

import (
	"iter"

	"github.com/paulmach/osm"
)

// Feature is one decoded linear feature from an OSM extract. The package
// never mutates a Feature and only reads its first and last node.
type Feature struct {
	ID    osm.WayID
	Nodes []osm.NodeID
	Tags  osm.Tags
}

// wayEndpoints records the first and last node of one qualifying way.
// Entries are kept in scan order so the final edge list follows the order
// ways were seen in the input.
type wayEndpoints struct {
	ID    osm.WayID
	Start osm.NodeID
	End   osm.NodeID
}

// Counter accumulates endpoint degrees over a single pass of way features.
// Feed it ways with Way, then call Edges (or Junctions). Not safe for
// concurrent use; create a fresh Counter per analysis.
type Counter struct {
	starts    degreeCount
	ends      degreeCount
	endpoints []wayEndpoints
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{
		starts: degreeCount{},
		ends:   degreeCount{},
	}
}

// Way feeds one feature into the counter. Features without a waterway tag
// or with fewer than two nodes are skipped with no side effect. A closed
// loop (start node == end node) registers once in each counter for that
// node; that is intentional, not a case to suppress.
func (c *Counter) Way(f Feature) {
	if len(f.Nodes) < 2 || !hasWaterwayTag(f.Tags) {
		return
	}

	start := f.Nodes[0]
	end := f.Nodes[len(f.Nodes)-1]

	c.endpoints = append(c.endpoints, wayEndpoints{ID: f.ID, Start: start, End: end})
	c.starts.increment(start)
	c.ends.increment(end)
}

// Junctions classifies every node seen as a way endpoint in either
// direction. The rule is exact: two ends and zero starts, or two starts
// and zero ends. Any other combination, including the degree-3+ case, is
// not a junction.
func (c *Counter) Junctions() map[osm.NodeID]struct{} {
	seen := make(map[osm.NodeID]struct{}, len(c.starts)+len(c.ends))
	for n := range c.starts {
		seen[n] = struct{}{}
	}
	for n := range c.ends {
		seen[n] = struct{}{}
	}

	junctions := make(map[osm.NodeID]struct{})
	for n := range seen {
		sc := c.starts.get(n)
		ec := c.ends.get(n)
		if (ec == 2 && sc == 0) || (sc == 2 && ec == 0) {
			junctions[n] = struct{}{}
		}
	}
	return junctions
}

// Edges returns the ids of ways whose both endpoints are junction nodes,
// in the order the ways were fed in.
func (c *Counter) Edges() []osm.WayID {
	junctions := c.Junctions()

	var edges []osm.WayID
	for _, ep := range c.endpoints {
		if _, ok := junctions[ep.Start]; !ok {
			continue
		}
		if _, ok := junctions[ep.End]; !ok {
			continue
		}
		edges = append(edges, ep.ID)
	}
	return edges
}

// ExtractJunctionEdges consumes a lazy feature sequence in a single pass
// and returns the selected way ids and their count. The sequence may be
// arbitrarily large; only endpoint ids are retained. An empty sequence
// yields an empty list and count 0.
func ExtractJunctionEdges(features iter.Seq[Feature]) ([]osm.WayID, int) {
	c := NewCounter()
	for f := range features {
		c.Way(f)
	}
	edges := c.Edges()
	return edges, len(edges)
}

// hasWaterwayTag reports whether the tag set carries a waterway key.
// Presence is what matters; the value may be anything, even empty.
func hasWaterwayTag(tags osm.Tags) bool {
	for _, t := range tags {
		if t.Key == "waterway" {
			return true
		}
	}
	return false
}
