package osmstream

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestFeatureFromWay(t *testing.T) {
	w := &osm.Way{
		ID: 42,
		Nodes: osm.WayNodes{
			{ID: 10},
			{ID: 11},
			{ID: 12},
		},
		Tags: osm.Tags{{Key: "waterway", Value: "river"}},
	}

	f := featureFromWay(w)

	if f.ID != 42 {
		t.Errorf("ID = %d, want 42", f.ID)
	}
	if len(f.Nodes) != 3 || f.Nodes[0] != 10 || f.Nodes[2] != 12 {
		t.Errorf("Nodes = %v, want [10 11 12]", f.Nodes)
	}
	if f.Tags.Find("waterway") != "river" {
		t.Errorf("Tags = %v, want waterway=river", f.Tags)
	}
}

func TestFeatureFromWayEmpty(t *testing.T) {
	f := featureFromWay(&osm.Way{ID: 1})
	if len(f.Nodes) != 0 {
		t.Errorf("Nodes = %v, want empty", f.Nodes)
	}
}

func TestReportCount(t *testing.T) {
	r := &Report{Edges: []osm.WayID{1, 2, 3}}
	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}

	empty := &Report{}
	if empty.Count() != 0 {
		t.Errorf("Count() on empty report = %d, want 0", empty.Count())
	}
}
