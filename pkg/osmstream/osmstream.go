// Package osmstream feeds waterway ways from an OSM PBF extract into the
// junction analysis. Only the way stream is decoded; nodes and relations
// are skipped entirely since the analysis never needs coordinates.
package osmstream

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"reverse_waterways/pkg/junction"
)

// Report holds the output of analyzing one extract.
type Report struct {
	WaysScanned int // total ways seen in the extract, before filtering
	Edges       []osm.WayID
}

// Count returns the number of selected ways.
func (r *Report) Count() int {
	return len(r.Edges)
}

// Analyze scans the extract once and returns the ways whose both endpoints
// are junction nodes. The reader is consumed in a single forward pass.
func Analyze(ctx context.Context, r io.Reader) (*Report, error) {
	scanner := osmpbf.New(ctx, r, 1)
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	scanned := 0
	features := func(yield func(junction.Feature) bool) {
		for scanner.Scan() {
			w, ok := scanner.Object().(*osm.Way)
			if !ok {
				continue
			}
			scanned++
			if !yield(featureFromWay(w)) {
				return
			}
		}
	}

	edges, _ := junction.ExtractJunctionEdges(features)
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan ways: %w", err)
	}

	return &Report{
		WaysScanned: scanned,
		Edges:       edges,
	}, nil
}

// featureFromWay copies the node ids out of a decoded way so the way
// object itself does not need to outlive the scan loop.
func featureFromWay(w *osm.Way) junction.Feature {
	nodes := make([]osm.NodeID, len(w.Nodes))
	for i, wn := range w.Nodes {
		nodes[i] = wn.ID
	}
	return junction.Feature{
		ID:    w.ID,
		Nodes: nodes,
		Tags:  w.Tags,
	}
}
