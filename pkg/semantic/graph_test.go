package semantic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/geomap-asset/backend/pkg/catalog"
)

func nodeIDs(g *Graph, typ NodeType) []string {
	ids := make([]string, 0)
	for _, n := range g.Nodes {
		if n.Type == typ {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func hasEdge(g *Graph, source, target string, typ EdgeType) bool {
	for _, l := range g.Links {
		if l.Source == source && l.Target == target && l.Type == typ {
			return true
		}
	}
	return false
}

func TestBuildGraphUnknownMode(t *testing.T) {
	_, err := BuildGraph(sampleAssets(), Mode("radial"))
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("BuildGraph with bad mode returned %v, want ErrUnknownMode", err)
	}
}

func TestBuildGraphObjectCentricTopology(t *testing.T) {
	assets := sampleAssets()
	g, err := BuildGraph(assets, ModeObjectCentric)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	if got := nodeIDs(g, NodeRoot); !reflect.DeepEqual(got, []string{"root"}) {
		t.Fatalf("root nodes = %v", got)
	}
	if got := nodeIDs(g, NodeOilfield); !reflect.DeepEqual(got, []string{"field-Saertu", "field-Weiyuan"}) {
		t.Fatalf("oilfield nodes = %v", got)
	}
	if got := nodeIDs(g, NodeProfession); !reflect.DeepEqual(got, []string{"prof-Geology", "prof-Geophysics", "prof-Drilling"}) {
		t.Fatalf("profession nodes = %v", got)
	}
	if got := nodeIDs(g, NodeAsset); len(got) != len(assets) {
		t.Fatalf("asset node count = %d, want %d", len(got), len(assets))
	}

	// Every asset carries exactly two hierarchy edges, one per hub.
	for _, a := range assets {
		if !hasEdge(g, "field-"+a.Oilfield, a.ID, EdgeHierarchy) {
			t.Fatalf("missing oilfield edge for %s", a.ID)
		}
		if !hasEdge(g, "prof-"+a.Profession, a.ID, EdgeHierarchy) {
			t.Fatalf("missing profession edge for %s", a.ID)
		}
		if got := len(g.NeighborsOf(a.ID)); got != 2 {
			t.Fatalf("asset %s has %d incident edges, want 2", a.ID, got)
		}
	}

	for _, hub := range []string{"field-Saertu", "field-Weiyuan", "prof-Geology", "prof-Geophysics", "prof-Drilling"} {
		if !hasEdge(g, "root", hub, EdgeHierarchy) {
			t.Fatalf("missing root edge to %s", hub)
		}
	}
}

func TestBuildGraphObjectCentricDeterminism(t *testing.T) {
	assets := sampleAssets()
	first, err := BuildGraph(assets, ModeObjectCentric)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	second, err := BuildGraph(assets, ModeObjectCentric)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	if !reflect.DeepEqual(first.Links, second.Links) {
		t.Fatal("edge lists differ between identical builds")
	}
	if len(first.Nodes) != len(second.Nodes) {
		t.Fatal("node counts differ between identical builds")
	}
	for i := range first.Nodes {
		a, b := first.Nodes[i], second.Nodes[i]
		if a.ID != b.ID || a.X != b.X || a.Y != b.Y {
			t.Fatalf("node %d differs between builds: %+v vs %+v", i, a, b)
		}
	}
}

func TestBuildGraphDimensionCentricTopology(t *testing.T) {
	assets := sampleAssets()
	g, err := BuildGraph(assets, ModeDimensionCentric)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	axes := nodeIDs(g, NodeAxisHub)
	wantAxes := []string{"axis-object", "axis-business", "axis-work", "axis-profession", "axis-process"}
	if !reflect.DeepEqual(axes, wantAxes) {
		t.Fatalf("axis hubs = %v, want %v", axes, wantAxes)
	}
	for _, axis := range axes {
		if !hasEdge(g, "semantic-core", axis, EdgeAxis) {
			t.Fatalf("missing axis edge to %s", axis)
		}
	}

	// Each mounted coordinate yields one semantic edge to its value node.
	idx := BuildDimensionIndex(assets)
	for _, a := range assets {
		wantEdges := 0
		for _, key := range DimensionKeys() {
			val := dimensionValue(&a, key)
			if val == "" {
				continue
			}
			wantEdges++
			if !hasEdge(g, a.ID, dimensionNodeID(key, val), EdgeSemantic) {
				t.Fatalf("asset %s missing semantic edge for %s=%s", a.ID, key, val)
			}
		}
		gotEdges := 0
		for _, l := range g.Links {
			if l.Source == a.ID && l.Type == EdgeSemantic {
				gotEdges++
			}
		}
		if gotEdges != wantEdges {
			t.Fatalf("asset %s has %d semantic edges, want %d", a.ID, gotEdges, wantEdges)
		}
	}

	// Every indexed value has a node hanging off its axis.
	for _, key := range DimensionKeys() {
		for _, val := range idx.Values(key) {
			if g.NodeByID(dimensionNodeID(key, val)) == nil {
				t.Fatalf("missing value node for %s=%s", key, val)
			}
			if !hasEdge(g, "axis-"+string(key), dimensionNodeID(key, val), EdgeHierarchy) {
				t.Fatalf("missing hierarchy edge axis-%s -> %s", key, val)
			}
		}
	}
}

func TestBuildGraphDimensionCentricUnmountedAsset(t *testing.T) {
	assets := []catalog.Asset{
		{ID: "bare", Title: "Bare", Oilfield: "F", Profession: "P"},
	}
	g, err := BuildGraph(assets, ModeDimensionCentric)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	for _, l := range g.Links {
		if l.Type == EdgeSemantic {
			t.Fatalf("asset with no coordinates produced semantic edge %+v", l)
		}
	}
	if g.NodeByID("bare") == nil {
		t.Fatal("asset node missing from dimension-centric graph")
	}
}

func TestRelatedNodeIDsSingleHop(t *testing.T) {
	g, err := BuildGraph(sampleAssets(), ModeObjectCentric)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	related := g.RelatedNodeIDs("a1")
	want := []string{"a1", "field-Saertu", "prof-Geology"}
	if len(related) != len(want) {
		t.Fatalf("related ids = %v, want %v", related, want)
	}
	for _, id := range want {
		if _, ok := related[id]; !ok {
			t.Fatalf("related ids missing %s (got %v)", id, related)
		}
	}

	// One hop only: root is two hops from an asset and must not appear.
	if _, ok := related["root"]; ok {
		t.Fatal("related ids leaked a two-hop node")
	}
}

func TestBuildGraphEmptyInput(t *testing.T) {
	g, err := BuildGraph(nil, ModeObjectCentric)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if len(g.Nodes) != 1 || g.Nodes[0].ID != "root" {
		t.Fatalf("empty snapshot graph nodes = %+v, want root only", g.Nodes)
	}
	if len(g.Links) != 0 {
		t.Fatalf("empty snapshot graph has %d links, want 0", len(g.Links))
	}
}
