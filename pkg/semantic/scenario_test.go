package semantic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/geomap-asset/backend/pkg/catalog"
)

func evaluationScenario() catalog.ScenarioDefinition {
	return catalog.ScenarioDefinition{
		ID:   "s1",
		Name: "New Well Evaluation",
		Stages: []catalog.StageRule{
			{ID: "s1-1", Name: "S1", RequiredCategories: []string{"ExplorationMap"}},
			{ID: "s1-2", Name: "S2", RequiredCategories: []string{"ProductionModel"}},
			{ID: "s1-3", Name: "S3", RequiredCategories: []string{"InspectionImage"}},
		},
	}
}

func TestAggregateByScenarioStageOrder(t *testing.T) {
	groups, err := AggregateByScenario(sampleAssets(), evaluationScenario(), "Saertu")
	if err != nil {
		t.Fatalf("AggregateByScenario: %v", err)
	}

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.StageName)
	}
	if !reflect.DeepEqual(names, []string{"S1", "S2", "S3"}) {
		t.Fatalf("stage order = %v, want declared order", names)
	}

	if len(groups[0].Assets) != 1 || groups[0].Assets[0].ID != "a1" {
		t.Fatalf("stage S1 assets = %+v, want [a1]", groups[0].Assets)
	}
	if len(groups[1].Assets) != 1 || groups[1].Assets[0].ID != "a2" {
		t.Fatalf("stage S2 assets = %+v, want [a2]", groups[1].Assets)
	}
	// Empty stages stay in the output so callers can show the gap.
	if len(groups[2].Assets) != 0 {
		t.Fatalf("stage S3 assets = %+v, want empty", groups[2].Assets)
	}
}

func TestAggregateByScenarioFocalUnion(t *testing.T) {
	// a3 matches by oilfield, well id, and coordinate object; each handle
	// must resolve to the same stage membership.
	scenario := catalog.ScenarioDefinition{
		ID:   "s2",
		Name: "Drilling Review",
		Stages: []catalog.StageRule{
			{ID: "s2-1", Name: "Design", RequiredCategories: []string{"WellDesign"}},
		},
	}

	for _, focal := range []string{"Weiyuan", "W-204H"} {
		groups, err := AggregateByScenario(sampleAssets(), scenario, focal)
		if err != nil {
			t.Fatalf("AggregateByScenario(%s): %v", focal, err)
		}
		if len(groups) != 1 || len(groups[0].Assets) != 1 || groups[0].Assets[0].ID != "a3" {
			t.Fatalf("focal %s: groups = %+v, want a3 in Design", focal, groups)
		}
	}
}

func TestAggregateByScenarioMultiStageMembership(t *testing.T) {
	// Stages are evaluated independently; a category required by two
	// stages lands the asset in both.
	scenario := catalog.ScenarioDefinition{
		ID: "s3",
		Stages: []catalog.StageRule{
			{ID: "s3-1", Name: "Background", RequiredCategories: []string{"ExplorationMap", "ProductionModel"}},
			{ID: "s3-2", Name: "Decision", RequiredCategories: []string{"ExplorationMap"}},
		},
	}

	groups, err := AggregateByScenario(sampleAssets(), scenario, "Saertu")
	if err != nil {
		t.Fatalf("AggregateByScenario: %v", err)
	}
	if len(groups[0].Assets) != 2 {
		t.Fatalf("Background assets = %+v, want a1 and a2", groups[0].Assets)
	}
	if len(groups[1].Assets) != 1 || groups[1].Assets[0].ID != "a1" {
		t.Fatalf("Decision assets = %+v, want [a1]", groups[1].Assets)
	}
}

func TestAggregateByScenarioEmptyFocalObject(t *testing.T) {
	groups, err := AggregateByScenario(sampleAssets(), evaluationScenario(), "")
	if err != nil {
		t.Fatalf("AggregateByScenario: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("empty focal object produced %d groups, want 0", len(groups))
	}
}

func TestAggregateByScenarioUnknownFocalObject(t *testing.T) {
	groups, err := AggregateByScenario(sampleAssets(), evaluationScenario(), "NoSuchField")
	if err != nil {
		t.Fatalf("AggregateByScenario: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("unknown focal object produced %d groups, want all 3 stages", len(groups))
	}
	for _, g := range groups {
		if len(g.Assets) != 0 {
			t.Fatalf("stage %s has assets for unknown focal object", g.StageName)
		}
	}
}

func TestAggregateByScenarioNoStages(t *testing.T) {
	_, err := AggregateByScenario(sampleAssets(), catalog.ScenarioDefinition{ID: "bad"}, "Saertu")
	if !errors.Is(err, ErrNoStages) {
		t.Fatalf("scenario without stages returned %v, want ErrNoStages", err)
	}
}

func TestFocalObjects(t *testing.T) {
	got := FocalObjects(sampleAssets())
	want := []string{"Block1", "Saertu", "W-204H", "Weiyuan"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FocalObjects = %v, want %v", got, want)
	}
}
