// Package memory provides an in-memory catalog.Store used for local
// development and tests. It keeps insertion order so listings and graph
// builds stay deterministic across calls.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/geomap-asset/backend/pkg/catalog"
)

type MemoryStore struct {
	mu sync.RWMutex

	assets     map[string]catalog.Asset
	assetOrder []string
	embeddings map[string][]float32

	scenarios     map[string]catalog.ScenarioDefinition
	scenarioOrder []string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		assets:     make(map[string]catalog.Asset),
		embeddings: make(map[string][]float32),
		scenarios:  make(map[string]catalog.ScenarioDefinition),
	}
}

// NewSeededMemoryStore returns an in-memory store preloaded with the demo
// catalog: a cross-section of assets from several oilfields plus the
// standard scenario definitions.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	for _, a := range SeedAssets() {
		s.assets[a.ID] = a
		s.assetOrder = append(s.assetOrder, a.ID)
	}
	for _, sc := range SeedScenarios() {
		s.scenarios[sc.ID] = sc
		s.scenarioOrder = append(s.scenarioOrder, sc.ID)
	}
	return s
}

func (s *MemoryStore) GetAllAssets(ctx context.Context) ([]catalog.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Asset, 0, len(s.assetOrder))
	for _, id := range s.assetOrder {
		out = append(out, s.assets[id])
	}
	return out, nil
}

func (s *MemoryStore) GetAssetByID(ctx context.Context, id string) (catalog.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.assets[id]
	if !ok {
		return catalog.Asset{}, catalog.ErrNotFound
	}
	return asset, nil
}

func (s *MemoryStore) CreateAsset(ctx context.Context, asset catalog.Asset) (catalog.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if asset.Status == "" {
		asset.Status = catalog.StatusDraft
	}
	if _, exists := s.assets[asset.ID]; !exists {
		s.assetOrder = append(s.assetOrder, asset.ID)
	}
	s.assets[asset.ID] = asset
	return asset, nil
}

func (s *MemoryStore) UpdateAsset(ctx context.Context, asset catalog.Asset) (catalog.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[asset.ID]; !ok {
		return catalog.Asset{}, catalog.ErrNotFound
	}
	s.assets[asset.ID] = asset
	return asset, nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id string, status catalog.Status) (catalog.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[id]
	if !ok {
		return catalog.Asset{}, catalog.ErrNotFound
	}
	asset.Status = status
	s.assets[id] = asset
	return asset, nil
}

func (s *MemoryStore) SetFigureNote(ctx context.Context, id string, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[id]
	if !ok {
		return catalog.ErrNotFound
	}
	asset.FigureNote = note
	s.assets[id] = asset
	return nil
}

func (s *MemoryStore) SetCoordinates(ctx context.Context, id string, coords catalog.Coordinates5D) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[id]
	if !ok {
		return catalog.ErrNotFound
	}
	asset.Coordinates5D = &coords
	s.assets[id] = asset
	return nil
}

func (s *MemoryStore) SetEmbedding(ctx context.Context, id string, embedding []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[id]; !ok {
		return catalog.ErrNotFound
	}
	vec := make([]float32, len(embedding))
	copy(vec, embedding)
	s.embeddings[id] = vec
	return nil
}

// FindSimilarAssets ranks assets with a stored embedding by cosine
// similarity to the query vector. Assets without an embedding are skipped.
func (s *MemoryStore) FindSimilarAssets(ctx context.Context, embedding []float32, limit int) ([]catalog.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		id    string
		score float64
	}
	ranked := make([]scored, 0, len(s.embeddings))
	for _, id := range s.assetOrder {
		vec, ok := s.embeddings[id]
		if !ok {
			continue
		}
		ranked = append(ranked, scored{id: id, score: cosineSimilarity(embedding, vec)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]catalog.Asset, 0, limit)
	for _, r := range ranked[:limit] {
		out = append(out, s.assets[r.id])
	}
	return out, nil
}

func (s *MemoryStore) GetScenarios(ctx context.Context) ([]catalog.ScenarioDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.ScenarioDefinition, 0, len(s.scenarioOrder))
	for _, id := range s.scenarioOrder {
		out = append(out, s.scenarios[id])
	}
	return out, nil
}

func (s *MemoryStore) GetScenarioByID(ctx context.Context, id string) (catalog.ScenarioDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scenario, ok := s.scenarios[id]
	if !ok {
		return catalog.ScenarioDefinition{}, catalog.ErrNotFound
	}
	return scenario, nil
}

func (s *MemoryStore) CreateScenario(ctx context.Context, scenario catalog.ScenarioDefinition) (catalog.ScenarioDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.scenarios[scenario.ID]; !exists {
		s.scenarioOrder = append(s.scenarioOrder, scenario.ID)
	}
	s.scenarios[scenario.ID] = scenario
	return scenario, nil
}

func (s *MemoryStore) UpdateScenario(ctx context.Context, scenario catalog.ScenarioDefinition) (catalog.ScenarioDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scenarios[scenario.ID]; !ok {
		return catalog.ScenarioDefinition{}, catalog.ErrNotFound
	}
	s.scenarios[scenario.ID] = scenario
	return scenario, nil
}

func (s *MemoryStore) DeleteScenario(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scenarios[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(s.scenarios, id)
	for i, sid := range s.scenarioOrder {
		if sid == id {
			s.scenarioOrder = append(s.scenarioOrder[:i], s.scenarioOrder[i+1:]...)
			break
		}
	}
	return nil
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
