package semantic

import (
	"errors"
	"fmt"
	"math"

	"github.com/geomap-asset/backend/pkg/catalog"
)

// Mode selects one of the two graph topologies.
type Mode string

const (
	// ModeObjectCentric aggregates assets around their physical work area
	// (oilfield) and profession hubs.
	ModeObjectCentric Mode = "object-centric"
	// ModeDimensionCentric mounts assets onto the five semantic coordinate
	// axes arranged as a pentagon around a central core.
	ModeDimensionCentric Mode = "dimension-centric"
)

// ErrUnknownMode is returned by BuildGraph for an unrecognized topology
// mode. Sparse or missing asset data is never an error; only malformed
// configuration is.
var ErrUnknownMode = errors.New("semantic: unknown graph mode")

// NodeType tags graph nodes for styling and selection handling.
type NodeType string

const (
	NodeRoot        NodeType = "root"
	NodeOilfield    NodeType = "oilfield"
	NodeProfession  NodeType = "profession"
	NodeAsset       NodeType = "asset"
	NodeAxisHub     NodeType = "axis-hub"
	NodeSemanticDim NodeType = "semantic-dim"
)

// EdgeType tags edges for styling and filtering only; traversal treats all
// edges as undirected.
type EdgeType string

const (
	EdgeHierarchy EdgeType = "hierarchy"
	EdgeSemantic  EdgeType = "semantic"
	EdgeAxis      EdgeType = "axis"
)

// GraphNode is a node of a derived graph. IDs are deterministic functions
// of the node category and its discriminator (`field-<oilfield>`,
// `prof-<profession>`, `axis-<key>`, `dim-<key>-<value>`, or the asset's
// own id), so a selection survives a rebuild over the same snapshot.
type GraphNode struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Type  NodeType `json:"type"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`

	// Asset points back to the source asset for asset-type nodes only.
	Asset *catalog.Asset `json:"asset,omitempty"`
}

// GraphEdge connects two node ids.
type GraphEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
}

// Graph is the full node/edge output of one build. Consumers must treat a
// rebuild as a full replacement, never as an incremental patch.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphEdge `json:"links"`
}

// Layout constants. The exact pixel placement is a presentation heuristic
// sized for the catalog UI viewport (800x700); only the topology is
// contractual.
const (
	centerX = 400.0
	centerY = 350.0

	oilfieldRadius   = 140.0
	professionRadius = 240.0
	professionOffset = math.Pi / 6
	fieldBlend       = 0.6
	professionBlend  = 0.4
	assetJitter      = 60.0

	axisRadius       = 180.0
	dimValueRadius   = 280.0
	dimValueSpread   = 0.3
	assetRimRadius   = 330.0
	pentagonRotation = -math.Pi / 2
)

// BuildGraph derives the node/edge graph for the snapshot in the requested
// topology. The result is deterministic: identical assets and mode yield
// identical ids, edges, and positions.
func BuildGraph(assets []catalog.Asset, mode Mode) (*Graph, error) {
	switch mode {
	case ModeObjectCentric:
		return buildObjectCentric(assets), nil
	case ModeDimensionCentric:
		return buildDimensionCentric(assets), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

func buildObjectCentric(assets []catalog.Asset) *Graph {
	g := &Graph{
		Nodes: make([]GraphNode, 0, len(assets)+1),
		Links: make([]GraphEdge, 0, len(assets)*2),
	}
	pos := make(map[string]int)

	g.addNode(pos, GraphNode{
		ID:    "root",
		Label: "Graphic Knowledge Base",
		Type:  NodeRoot,
		X:     centerX,
		Y:     centerY,
	})

	// Oilfield hubs on the inner ring, first-seen order.
	oilfields := distinctOilfields(assets)
	for i, field := range oilfields {
		angle := 2 * math.Pi * float64(i) / float64(len(oilfields))
		id := "field-" + field
		g.addNode(pos, GraphNode{
			ID:    id,
			Label: field,
			Type:  NodeOilfield,
			X:     centerX + math.Cos(angle)*oilfieldRadius,
			Y:     centerY + math.Sin(angle)*oilfieldRadius,
		})
		g.Links = append(g.Links, GraphEdge{Source: "root", Target: id, Type: EdgeHierarchy})
	}

	// Profession hubs on the outer ring, offset so they never sit on an
	// oilfield radial.
	professions := distinctProfessions(assets)
	for i, prof := range professions {
		angle := 2*math.Pi*float64(i)/float64(len(professions)) + professionOffset
		id := "prof-" + prof
		g.addNode(pos, GraphNode{
			ID:    id,
			Label: prof,
			Type:  NodeProfession,
			X:     centerX + math.Cos(angle)*professionRadius,
			Y:     centerY + math.Sin(angle)*professionRadius,
		})
		g.Links = append(g.Links, GraphEdge{Source: "root", Target: id, Type: EdgeHierarchy})
	}

	// Asset nodes blend their two hub positions plus an index-based jitter
	// so co-located assets fan out deterministically.
	for i := range assets {
		asset := assets[i]
		fieldIdx, hasField := pos["field-"+asset.Oilfield]
		profIdx, hasProf := pos["prof-"+asset.Profession]
		if !hasField || !hasProf {
			continue
		}
		fieldNode := g.Nodes[fieldIdx]
		profNode := g.Nodes[profIdx]

		mixX := fieldNode.X*fieldBlend + profNode.X*professionBlend
		mixY := fieldNode.Y*fieldBlend + profNode.Y*professionBlend
		angle := 2 * math.Pi * float64(i) / float64(len(assets))

		g.addNode(pos, GraphNode{
			ID:    asset.ID,
			Label: asset.Title,
			Type:  NodeAsset,
			X:     mixX + math.Cos(angle)*assetJitter,
			Y:     mixY + math.Sin(angle)*assetJitter,
			Asset: &assets[i],
		})
		g.Links = append(g.Links, GraphEdge{Source: fieldNode.ID, Target: asset.ID, Type: EdgeHierarchy})
		g.Links = append(g.Links, GraphEdge{Source: profNode.ID, Target: asset.ID, Type: EdgeHierarchy})
	}

	return g
}

func buildDimensionCentric(assets []catalog.Asset) *Graph {
	g := &Graph{
		Nodes: make([]GraphNode, 0, len(assets)+6),
		Links: make([]GraphEdge, 0, len(assets)*5),
	}
	pos := make(map[string]int)
	idx := BuildDimensionIndex(assets)

	g.addNode(pos, GraphNode{
		ID:    "semantic-core",
		Label: "5D Semantic Core",
		Type:  NodeRoot,
		X:     centerX,
		Y:     centerY,
	})

	keys := DimensionKeys()
	for i, key := range keys {
		angle := 2*math.Pi*float64(i)/float64(len(keys)) + pentagonRotation
		axisID := "axis-" + string(key)
		g.addNode(pos, GraphNode{
			ID:    axisID,
			Label: string(key),
			Type:  NodeAxisHub,
			X:     centerX + math.Cos(angle)*axisRadius,
			Y:     centerY + math.Sin(angle)*axisRadius,
		})
		g.Links = append(g.Links, GraphEdge{Source: "semantic-core", Target: axisID, Type: EdgeAxis})

		// Cluster the dimension's values angularly around its axis hub,
		// spread proportional to the value count.
		values := idx.Values(key)
		for valIdx, val := range values {
			valAngle := angle + (float64(valIdx)-float64(len(values)-1)/2)*dimValueSpread
			valID := dimensionNodeID(key, val)
			g.addNode(pos, GraphNode{
				ID:    valID,
				Label: val,
				Type:  NodeSemanticDim,
				X:     centerX + math.Cos(valAngle)*dimValueRadius,
				Y:     centerY + math.Sin(valAngle)*dimValueRadius,
			})
			g.Links = append(g.Links, GraphEdge{Source: axisID, Target: valID, Type: EdgeHierarchy})
		}
	}

	// Assets sit on the outermost rim; each mounts onto every dimension
	// value it carries.
	for i := range assets {
		asset := assets[i]
		angle := 2 * math.Pi * float64(i) / float64(len(assets))
		g.addNode(pos, GraphNode{
			ID:    asset.ID,
			Label: asset.Title,
			Type:  NodeAsset,
			X:     centerX + math.Cos(angle)*assetRimRadius,
			Y:     centerY + math.Sin(angle)*assetRimRadius,
			Asset: &assets[i],
		})
		for _, key := range keys {
			val := dimensionValue(&asset, key)
			if val == "" {
				continue
			}
			g.Links = append(g.Links, GraphEdge{
				Source: asset.ID,
				Target: dimensionNodeID(key, val),
				Type:   EdgeSemantic,
			})
		}
	}

	return g
}

func dimensionNodeID(key DimensionKey, value string) string {
	return "dim-" + string(key) + "-" + value
}

func (g *Graph) addNode(pos map[string]int, node GraphNode) {
	pos[node.ID] = len(g.Nodes)
	g.Nodes = append(g.Nodes, node)
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id string) *GraphNode {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// NeighborsOf returns every edge incident to the node, in build order.
func (g *Graph) NeighborsOf(nodeID string) []GraphEdge {
	edges := make([]GraphEdge, 0)
	for _, link := range g.Links {
		if link.Source == nodeID || link.Target == nodeID {
			edges = append(edges, link)
		}
	}
	return edges
}

// RelatedNodeIDs returns the set of node ids touched by the focus node's
// incident edges: the focus itself (when connected) and its one-hop
// neighbors. It deliberately does not walk the connected component; the
// highlight semantics are a single hop.
func (g *Graph) RelatedNodeIDs(focusNodeID string) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, link := range g.NeighborsOf(focusNodeID) {
		ids[link.Source] = struct{}{}
		ids[link.Target] = struct{}{}
	}
	return ids
}

func distinctOilfields(assets []catalog.Asset) []string {
	seen := make(map[string]struct{}, len(assets))
	out := make([]string, 0)
	for i := range assets {
		f := assets[i].Oilfield
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func distinctProfessions(assets []catalog.Asset) []string {
	seen := make(map[string]struct{}, len(assets))
	out := make([]string, 0)
	for i := range assets {
		p := assets[i].Profession
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
