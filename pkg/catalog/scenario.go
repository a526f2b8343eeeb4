package catalog

// StageRule is one ordered step of a business scenario. Assets whose
// category is in RequiredCategories belong to this stage when a scenario
// is evaluated against a focal object.
type StageRule struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	RequiredCategories []string `json:"required_categories"`
}

// ScenarioDefinition is business-owned configuration describing an ordered
// pipeline of stages. Stage order is meaningful and must survive storage
// and aggregation unchanged.
type ScenarioDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon,omitempty"`
	Description string      `json:"description,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
	Stages      []StageRule `json:"stages"`
}
