package semantic

import (
	"testing"

	"github.com/geomap-asset/backend/pkg/catalog"
)

func cellFor(cells []HeatmapCell, a, b string) (HeatmapCell, bool) {
	for _, c := range cells {
		if c.FacetA == a && c.FacetB == b {
			return c, true
		}
	}
	return HeatmapCell{}, false
}

func TestComputeHeatmapFocusCellDominates(t *testing.T) {
	assets := sampleAssets()
	professions := []string{"Geology", "Geophysics", "Drilling"}
	stages := []string{"Ex", "Ev", "De", "Pr"}
	focus := catalog.Asset{Profession: "Geology", Stage: "Development"}

	cells := ComputeHeatmap(assets, professions, stages, focus)
	if len(cells) != len(professions)*len(stages) {
		t.Fatalf("matrix size = %d, want %d", len(cells), len(professions)*len(stages))
	}

	focusCell, ok := cellFor(cells, "Geology", "De")
	if !ok {
		t.Fatal("focus cell missing from matrix")
	}
	if focusCell.Intensity != 95 {
		t.Fatalf("focus cell intensity = %d, want 95", focusCell.Intensity)
	}

	for _, c := range cells {
		if c == focusCell {
			continue
		}
		if c.Intensity >= focusCell.Intensity {
			t.Fatalf("cell (%s,%s) intensity %d >= focus intensity", c.FacetA, c.FacetB, c.Intensity)
		}
		if c.Intensity < 0 || c.Intensity >= 80 {
			t.Fatalf("cell (%s,%s) intensity %d outside [0,80)", c.FacetA, c.FacetB, c.Intensity)
		}
	}
}

func TestComputeHeatmapSeedFormula(t *testing.T) {
	// Two assets, so N%5 = 2. Seed for ("Geo","Ex") = 3+2+2 = 7, 7*17 = 119,
	// 119%80 = 39. Rune counts, not byte counts, feed the seed.
	assets := sampleAssets()[:2]
	focus := catalog.Asset{Profession: "None", Stage: "None"}

	cells := ComputeHeatmap(assets, []string{"Geo", "地质"}, []string{"Ex", "勘探"}, focus)

	tests := []struct {
		a, b string
		want int
	}{
		{"Geo", "Ex", 39},    // (3+2+2)*17 % 80
		{"Geo", "勘探", 39},    // same rune counts as "Ex"
		{"地质", "Ex", 22},     // (2+2+2)*17 % 80
		{"地质", "勘探", 22},
	}
	for _, tc := range tests {
		got, ok := cellFor(cells, tc.a, tc.b)
		if !ok {
			t.Fatalf("cell (%s,%s) missing", tc.a, tc.b)
		}
		if got.Intensity != tc.want {
			t.Fatalf("cell (%s,%s) intensity = %d, want %d", tc.a, tc.b, got.Intensity, tc.want)
		}
	}
}

func TestComputeHeatmapStagePrefix(t *testing.T) {
	// The focus column matches on the first two runes of the stage, so a
	// multi-rune CJK stage name like 开发阶段 lands in the 开发 column.
	assets := sampleAssets()
	focus := catalog.Asset{Profession: "地质", Stage: "开发阶段"}

	cells := ComputeHeatmap(assets, []string{"地质"}, []string{"勘探", "开发"}, focus)
	hot, ok := cellFor(cells, "地质", "开发")
	if !ok || hot.Intensity != 95 {
		t.Fatalf("prefix-matched cell = %+v (found=%v), want intensity 95", hot, ok)
	}
	cold, _ := cellFor(cells, "地质", "勘探")
	if cold.Intensity >= 80 {
		t.Fatalf("non-focus cell intensity = %d, want < 80", cold.Intensity)
	}
}

func TestComputeHeatmapDeterminism(t *testing.T) {
	assets := sampleAssets()
	professions := []string{"Geology", "Drilling"}
	stages := []string{"De", "Pr"}
	focus := assets[0]

	first := ComputeHeatmap(assets, professions, stages, focus)
	second := ComputeHeatmap(assets, professions, stages, focus)
	if len(first) != len(second) {
		t.Fatal("matrix sizes differ between identical calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestComputeHeatmapEmptyFacets(t *testing.T) {
	cells := ComputeHeatmap(sampleAssets(), nil, []string{"De"}, catalog.Asset{})
	if len(cells) != 0 {
		t.Fatalf("empty facet list produced %d cells, want 0", len(cells))
	}
}
