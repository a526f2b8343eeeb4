package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned by store lookups when no record matches.
var ErrNotFound = errors.New("catalog: not found")

// Store defines the persistence contract for assets and scenario
// definitions. The derived computations in pkg/semantic only ever read a
// snapshot via GetAllAssets and never mutate the store; all writes come
// from the editing and review surfaces and from the AI enrichment worker.
//
// GetAllAssets must return a consistent view for the duration of one call;
// callers treat the returned slice as immutable.
type Store interface {
	GetAllAssets(ctx context.Context) ([]Asset, error)
	GetAssetByID(ctx context.Context, id string) (Asset, error)
	CreateAsset(ctx context.Context, asset Asset) (Asset, error)
	UpdateAsset(ctx context.Context, asset Asset) (Asset, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Asset, error)

	SetFigureNote(ctx context.Context, id string, note string) error
	SetCoordinates(ctx context.Context, id string, coords Coordinates5D) error
	SetEmbedding(ctx context.Context, id string, embedding []float32) error
	FindSimilarAssets(ctx context.Context, embedding []float32, limit int) ([]Asset, error)

	GetScenarios(ctx context.Context) ([]ScenarioDefinition, error)
	GetScenarioByID(ctx context.Context, id string) (ScenarioDefinition, error)
	CreateScenario(ctx context.Context, scenario ScenarioDefinition) (ScenarioDefinition, error)
	UpdateScenario(ctx context.Context, scenario ScenarioDefinition) (ScenarioDefinition, error)
	DeleteScenario(ctx context.Context, id string) error
}
