// Package semantic derives navigable structure from a catalog snapshot: the
// five-dimensional coordinate index, the asset knowledge graph, the
// profession/stage association matrix, and scenario stage aggregation.
//
// Everything in this package is a pure function over the asset slice passed
// in. Nothing here mutates the store, caches between calls, or performs
// I/O; identical input always produces identical output.
package semantic

import (
	"github.com/geomap-asset/backend/pkg/catalog"
)

// DimensionKey identifies one of the five fixed semantic dimensions.
type DimensionKey string

const (
	DimensionObject     DimensionKey = "object"
	DimensionBusiness   DimensionKey = "business"
	DimensionWork       DimensionKey = "work"
	DimensionProfession DimensionKey = "profession"
	DimensionProcess    DimensionKey = "process"
)

// DimensionKeys returns the five dimension keys in their fixed canonical
// order. The order drives axis placement in the dimension-centric graph and
// the iteration order of the dimension index.
func DimensionKeys() []DimensionKey {
	return []DimensionKey{
		DimensionObject,
		DimensionBusiness,
		DimensionWork,
		DimensionProfession,
		DimensionProcess,
	}
}

// dimensionValue reads the coordinate value for a single dimension. Assets
// without a coordinate record, and dimensions left empty, both read as "".
func dimensionValue(a *catalog.Asset, key DimensionKey) string {
	if a.Coordinates5D == nil {
		return ""
	}
	switch key {
	case DimensionObject:
		return a.Coordinates5D.Object
	case DimensionBusiness:
		return a.Coordinates5D.Business
	case DimensionWork:
		return a.Coordinates5D.Work
	case DimensionProfession:
		return a.Coordinates5D.Profession
	case DimensionProcess:
		return a.Coordinates5D.Process
	}
	return ""
}

// DimensionIndex maps each dimension to its distinct values (first-seen
// order) and each value to the assets mounted on it. It is rebuilt from
// scratch on every call to BuildDimensionIndex and carries no identity
// across snapshots.
type DimensionIndex struct {
	values map[DimensionKey][]string
	assets map[DimensionKey]map[string][]catalog.Asset
}

// BuildDimensionIndex scans the snapshot once per dimension and records
// every non-empty coordinate value together with the assets carrying it.
// Value order is first-seen over the input slice; asset order within a
// value follows the input slice as well.
func BuildDimensionIndex(assets []catalog.Asset) *DimensionIndex {
	idx := &DimensionIndex{
		values: make(map[DimensionKey][]string, 5),
		assets: make(map[DimensionKey]map[string][]catalog.Asset, 5),
	}

	for _, key := range DimensionKeys() {
		idx.assets[key] = make(map[string][]catalog.Asset)
		for i := range assets {
			val := dimensionValue(&assets[i], key)
			if val == "" {
				continue
			}
			if _, seen := idx.assets[key][val]; !seen {
				idx.values[key] = append(idx.values[key], val)
			}
			idx.assets[key][val] = append(idx.assets[key][val], assets[i])
		}
	}

	return idx
}

// Values returns the distinct non-empty values of a dimension in
// first-seen order. The returned slice is owned by the index.
func (idx *DimensionIndex) Values(key DimensionKey) []string {
	return idx.values[key]
}

// AssetsFor returns the assets whose coordinate on key equals value, in
// snapshot order. A value never recorded yields nil.
func (idx *DimensionIndex) AssetsFor(key DimensionKey, value string) []catalog.Asset {
	byValue := idx.assets[key]
	if byValue == nil {
		return nil
	}
	return byValue[value]
}

// DistinctCategories returns every asset category present in the snapshot,
// first-seen order. Used by the scenario configuration surface to offer
// category choices for stage rules.
func DistinctCategories(assets []catalog.Asset) []string {
	seen := make(map[string]struct{}, len(assets))
	out := make([]string, 0)
	for i := range assets {
		c := assets[i].Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
