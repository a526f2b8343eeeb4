package semantic

import (
	"errors"
	"slices"

	"github.com/geomap-asset/backend/pkg/catalog"
)

// ErrNoStages is returned when a scenario definition has no stages. A
// scenario without stages is malformed configuration, not sparse data, so
// it fails fast instead of yielding an empty aggregation.
var ErrNoStages = errors.New("semantic: scenario has no stages")

// StageGroup is the per-stage output of a scenario aggregation: the stage
// metadata plus the focal object's assets whose category matched the
// stage's rule set. Assets may be empty; the stage is still reported so
// callers can surface which pipeline steps have no supporting graphics yet.
type StageGroup struct {
	StageID            string          `json:"stage_id"`
	StageName          string          `json:"stage_name"`
	RequiredCategories []string        `json:"required_categories"`
	Assets             []catalog.Asset `json:"assets"`
}

// ValidateScenario checks the structural invariants of a scenario
// definition before it is stored or evaluated.
func ValidateScenario(scenario catalog.ScenarioDefinition) error {
	if len(scenario.Stages) == 0 {
		return ErrNoStages
	}
	return nil
}

// AggregateByScenario partitions the focal object's associated assets into
// the scenario's stages, in declared stage order.
//
// The focal object's assets are those matching it on any of oilfield, well
// id, or the object dimension of the 5D coordinate (a union; one match
// suffices, an asset is collected once). Each stage then filters that set
// independently by category membership, so an asset whose category appears
// in several stages' rule sets shows up in each of them.
//
// An empty focalObjectID returns an empty group list without evaluating
// the scenario. A focal object matching zero assets yields all stages with
// empty asset lists; that is indistinguishable from "valid object, nothing
// cataloged yet" by design.
func AggregateByScenario(assets []catalog.Asset, scenario catalog.ScenarioDefinition, focalObjectID string) ([]StageGroup, error) {
	if err := ValidateScenario(scenario); err != nil {
		return nil, err
	}
	if focalObjectID == "" {
		return []StageGroup{}, nil
	}

	focal := make([]catalog.Asset, 0)
	for i := range assets {
		a := assets[i]
		if a.Oilfield == focalObjectID || a.WellID == focalObjectID ||
			(a.Coordinates5D != nil && a.Coordinates5D.Object == focalObjectID) {
			focal = append(focal, a)
		}
	}

	groups := make([]StageGroup, 0, len(scenario.Stages))
	for _, stage := range scenario.Stages {
		matched := make([]catalog.Asset, 0)
		for i := range focal {
			if slices.Contains(stage.RequiredCategories, focal[i].Category) {
				matched = append(matched, focal[i])
			}
		}
		groups = append(groups, StageGroup{
			StageID:            stage.ID,
			StageName:          stage.Name,
			RequiredCategories: stage.RequiredCategories,
			Assets:             matched,
		})
	}

	return groups, nil
}

// FocalObjects lists every physical object a scenario can be evaluated
// against: all distinct oilfields, well ids, and object-dimension values in
// the snapshot, sorted.
func FocalObjects(assets []catalog.Asset) []string {
	seen := make(map[string]struct{})
	for i := range assets {
		a := assets[i]
		if a.Oilfield != "" {
			seen[a.Oilfield] = struct{}{}
		}
		if a.WellID != "" {
			seen[a.WellID] = struct{}{}
		}
		if a.Coordinates5D != nil && a.Coordinates5D.Object != "" {
			seen[a.Coordinates5D.Object] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for obj := range seen {
		out = append(out, obj)
	}
	slices.Sort(out)
	return out
}
