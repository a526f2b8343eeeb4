package semantic

import (
	"reflect"
	"testing"

	"github.com/geomap-asset/backend/pkg/catalog"
)

func coords(object, business, work, profession, process string) *catalog.Coordinates5D {
	return &catalog.Coordinates5D{
		Object:     object,
		Business:   business,
		Work:       work,
		Profession: profession,
		Process:    process,
	}
}

func sampleAssets() []catalog.Asset {
	return []catalog.Asset{
		{
			ID:            "a1",
			Title:         "Saertu North Block Structure Map",
			Category:      "ExplorationMap",
			Profession:    "Geology",
			Oilfield:      "Saertu",
			Stage:         "Development",
			Coordinates5D: coords("Block1", "", "", "Geology", ""),
		},
		{
			ID:            "a2",
			Title:         "Saertu Production Model",
			Category:      "ProductionModel",
			Profession:    "Geophysics",
			Oilfield:      "Saertu",
			Stage:         "Production",
			Coordinates5D: coords("Block1", "CapacityBuild", "", "Geophysics", ""),
		},
		{
			ID:            "a3",
			Title:         "W-204H Well Trajectory",
			Category:      "WellDesign",
			Profession:    "Drilling",
			Oilfield:      "Weiyuan",
			Stage:         "Development",
			WellID:        "W-204H",
			Coordinates5D: coords("W-204H", "CapacityBuild", "WellDesign", "Drilling", "Release"),
		},
	}
}

func TestBuildDimensionIndexValues(t *testing.T) {
	idx := BuildDimensionIndex(sampleAssets())

	tests := []struct {
		name string
		key  DimensionKey
		want []string
	}{
		{"Object", DimensionObject, []string{"Block1", "W-204H"}},
		{"Business", DimensionBusiness, []string{"CapacityBuild"}},
		{"Work", DimensionWork, []string{"WellDesign"}},
		{"Profession", DimensionProfession, []string{"Geology", "Geophysics", "Drilling"}},
		{"Process", DimensionProcess, []string{"Release"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := idx.Values(tc.key)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Values(%s) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestBuildDimensionIndexAssetsFor(t *testing.T) {
	idx := BuildDimensionIndex(sampleAssets())

	block1 := idx.AssetsFor(DimensionObject, "Block1")
	if len(block1) != 2 {
		t.Fatalf("AssetsFor(object, Block1) returned %d assets, want 2", len(block1))
	}
	if block1[0].ID != "a1" || block1[1].ID != "a2" {
		t.Fatalf("AssetsFor(object, Block1) order = [%s %s], want [a1 a2]", block1[0].ID, block1[1].ID)
	}

	if got := idx.AssetsFor(DimensionObject, "Nowhere"); got != nil {
		t.Fatalf("AssetsFor unknown value = %v, want nil", got)
	}
}

func TestBuildDimensionIndexDeterminism(t *testing.T) {
	assets := sampleAssets()
	first := BuildDimensionIndex(assets)
	second := BuildDimensionIndex(assets)

	for _, key := range DimensionKeys() {
		if !reflect.DeepEqual(first.Values(key), second.Values(key)) {
			t.Fatalf("value order for %s differs between builds", key)
		}
		for _, val := range first.Values(key) {
			if !reflect.DeepEqual(first.AssetsFor(key, val), second.AssetsFor(key, val)) {
				t.Fatalf("asset mapping for %s=%s differs between builds", key, val)
			}
		}
	}
}

func TestBuildDimensionIndexExcludesUnmounted(t *testing.T) {
	assets := []catalog.Asset{
		{ID: "mounted", Oilfield: "F1", Coordinates5D: coords("Obj", "", "", "", "")},
		{ID: "empty-object", Oilfield: "F1", Coordinates5D: coords("", "Biz", "", "", "")},
		{ID: "no-coords", Oilfield: "F1"},
	}

	idx := BuildDimensionIndex(assets)

	objects := idx.Values(DimensionObject)
	if !reflect.DeepEqual(objects, []string{"Obj"}) {
		t.Fatalf("object values = %v, want [Obj]", objects)
	}
	for _, a := range idx.AssetsFor(DimensionObject, "Obj") {
		if a.ID != "mounted" {
			t.Fatalf("object index references %s, want only the mounted asset", a.ID)
		}
	}
}

func TestBuildDimensionIndexEmptyInput(t *testing.T) {
	idx := BuildDimensionIndex(nil)
	for _, key := range DimensionKeys() {
		if got := idx.Values(key); len(got) != 0 {
			t.Fatalf("Values(%s) on empty input = %v, want empty", key, got)
		}
	}
}

func TestDistinctCategories(t *testing.T) {
	got := DistinctCategories(sampleAssets())
	want := []string{"ExplorationMap", "ProductionModel", "WellDesign"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DistinctCategories = %v, want %v", got, want)
	}
}
