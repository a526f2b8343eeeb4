package semantic

import (
	"unicode/utf8"

	"github.com/geomap-asset/backend/pkg/catalog"
)

// HeatmapCell is one cell of the association matrix between two categorical
// facets. Intensity is in [0,100]; the focus asset's own cell is pinned to
// the hot constant so it always dominates the matrix.
type HeatmapCell struct {
	FacetA    string `json:"facet_a"`
	FacetB    string `json:"facet_b"`
	Intensity int    `json:"intensity"`
}

const (
	focusIntensity  = 95
	stagePrefixLen  = 2
	seededIntensity = 80
)

// ComputeHeatmap builds the complete facetA x facetB intensity matrix for a
// focus asset. Facet A values are matched against the asset's profession;
// facet B values against the leading runes of its stage ("开发阶段" matches
// the "开发" column).
//
// Off-focus intensities use a seeded placeholder,
// `((len(a)+len(b)+(N%5))*17) % 80` over rune counts, kept for parity with
// the UI it feeds. It is reproducible but not a real co-occurrence
// statistic; the only contractual properties are determinism and the focus
// cell being hottest.
func ComputeHeatmap(assets []catalog.Asset, facetA []string, facetB []string, focus catalog.Asset) []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(facetA)*len(facetB))
	prefix := stagePrefix(focus.Stage)

	for _, a := range facetA {
		for _, b := range facetB {
			intensity := 0
			if a == focus.Profession && b == prefix {
				intensity = focusIntensity
			} else {
				seed := utf8.RuneCountInString(a) + utf8.RuneCountInString(b) + len(assets)%5
				intensity = (seed * 17) % seededIntensity
			}
			cells = append(cells, HeatmapCell{FacetA: a, FacetB: b, Intensity: intensity})
		}
	}

	return cells
}

func stagePrefix(stage string) string {
	runes := []rune(stage)
	if len(runes) <= stagePrefixLen {
		return stage
	}
	return string(runes[:stagePrefixLen])
}
