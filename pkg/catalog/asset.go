package catalog

// GraphicType classifies how an asset's content behaves over time.
type GraphicType string

const (
	GraphicStatic     GraphicType = "static"
	GraphicDynamic    GraphicType = "dynamic"
	GraphicDataVolume GraphicType = "datavolume"
)

// SpatialRelation places an asset's subject relative to the ground surface.
type SpatialRelation string

const (
	SpatialAerial     SpatialRelation = "aerial"
	SpatialSurface    SpatialRelation = "surface"
	SpatialGround     SpatialRelation = "ground"
	SpatialUnderwater SpatialRelation = "underwater"
	SpatialSubsurface SpatialRelation = "subsurface"
)

// Coordinates5D is the five-dimensional semantic coordinate attached to an
// asset. Each field holds a business vocabulary value; an empty string means
// the asset is unmounted on that dimension and is excluded from dimension
// indexing and semantic graph edges.
type Coordinates5D struct {
	Object     string `json:"object"`
	Business   string `json:"business"`
	Work       string `json:"work"`
	Profession string `json:"profession"`
	Process    string `json:"process"`
}

// Asset is the unit of content in the catalog: a single graphic (map,
// seismic section, well diagram, dashboard, ...) plus its physical and
// semantic metadata.
//
// Identity is the public ID, stable for the asset's lifetime. All other
// fields are mutable through the review/editing workflow.
type Asset struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Profession string `json:"profession"`
	Oilfield   string `json:"oilfield"`
	Stage      string `json:"stage"`

	SpatialRelation SpatialRelation `json:"spatial_relation,omitempty"`
	WellID          string          `json:"well_id,omitempty"`
	Layer           string          `json:"layer,omitempty"`

	GraphicType   GraphicType    `json:"graphic_type,omitempty"`
	Coordinates5D *Coordinates5D `json:"coordinates_5d,omitempty"`

	Thumbnail  string   `json:"thumbnail,omitempty"`
	FileKey    string   `json:"file_key,omitempty"`
	Version    string   `json:"version"`
	Status     Status   `json:"status"`
	Tags       []string `json:"tags"`
	FigureNote string   `json:"figure_note,omitempty"`

	Format           string `json:"format,omitempty"`
	Source           string `json:"source,omitempty"`
	SourcePage       int    `json:"source_page,omitempty"`
	CreationTime     string `json:"creation_time,omitempty"`
	LastUpdate       string `json:"last_update,omitempty"`
	CoordinateSystem string `json:"coordinate_system,omitempty"`
	ProjectName      string `json:"project_name,omitempty"`
	ProfessionDesc   string `json:"profession_desc,omitempty"`
	ConstructionType string `json:"construction_type,omitempty"`
	MBUNode          string `json:"mbu_node,omitempty"`
}

// HasCoordinates reports whether the asset carries a non-nil 5D coordinate
// record. Individual dimensions may still be empty.
func (a *Asset) HasCoordinates() bool {
	return a.Coordinates5D != nil
}
