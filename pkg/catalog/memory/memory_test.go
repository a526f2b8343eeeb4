package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/geomap-asset/backend/pkg/catalog"
)

func TestSeededStoreListsAssetsInOrder(t *testing.T) {
	store := NewSeededMemoryStore()

	assets, err := store.GetAllAssets(context.Background())
	if err != nil {
		t.Fatalf("GetAllAssets: %v", err)
	}
	if len(assets) != len(SeedAssets()) {
		t.Fatalf("asset count = %d, want %d", len(assets), len(SeedAssets()))
	}
	if assets[0].ID != "1" || assets[len(assets)-1].ID != "13" {
		t.Fatalf("seed order broken: first=%s last=%s", assets[0].ID, assets[len(assets)-1].ID)
	}

	again, err := store.GetAllAssets(context.Background())
	if err != nil {
		t.Fatalf("GetAllAssets: %v", err)
	}
	for i := range assets {
		if assets[i].ID != again[i].ID {
			t.Fatalf("listing order not stable at index %d", i)
		}
	}
}

func TestCreateAndGetAsset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.CreateAsset(ctx, catalog.Asset{ID: "x1", Title: "Test map"})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if created.Status != catalog.StatusDraft {
		t.Fatalf("new asset status = %s, want draft", created.Status)
	}

	got, err := store.GetAssetByID(ctx, "x1")
	if err != nil {
		t.Fatalf("GetAssetByID: %v", err)
	}
	if got.Title != "Test map" {
		t.Fatalf("title = %q", got.Title)
	}

	_, err = store.GetAssetByID(ctx, "missing")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("missing asset returned %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	updated, err := store.UpdateStatus(ctx, "3", catalog.StatusReview)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != catalog.StatusReview {
		t.Fatalf("status = %s, want review", updated.Status)
	}

	got, err := store.GetAssetByID(ctx, "3")
	if err != nil {
		t.Fatalf("GetAssetByID: %v", err)
	}
	if got.Status != catalog.StatusReview {
		t.Fatal("status change not persisted")
	}

	if _, err := store.UpdateStatus(ctx, "missing", catalog.StatusReview); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("missing asset returned %v, want ErrNotFound", err)
	}
}

func TestSetCoordinatesAndFigureNote(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.CreateAsset(ctx, catalog.Asset{ID: "x1"}); err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	coords := catalog.Coordinates5D{Object: "W-204H", Profession: "Drilling"}
	if err := store.SetCoordinates(ctx, "x1", coords); err != nil {
		t.Fatalf("SetCoordinates: %v", err)
	}
	if err := store.SetFigureNote(ctx, "x1", "Deviated well trajectory."); err != nil {
		t.Fatalf("SetFigureNote: %v", err)
	}

	got, err := store.GetAssetByID(ctx, "x1")
	if err != nil {
		t.Fatalf("GetAssetByID: %v", err)
	}
	if !got.HasCoordinates() || got.Coordinates5D.Object != "W-204H" {
		t.Fatalf("coordinates not persisted: %+v", got.Coordinates5D)
	}
	if got.FigureNote != "Deviated well trajectory." {
		t.Fatalf("figure note = %q", got.FigureNote)
	}
}

func TestFindSimilarAssetsRanksByCosine(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := store.CreateAsset(ctx, catalog.Asset{ID: id}); err != nil {
			t.Fatalf("CreateAsset: %v", err)
		}
	}
	// a points along the query, b is orthogonal, c is opposite.
	if err := store.SetEmbedding(ctx, "a", []float32{1, 0}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetEmbedding(ctx, "b", []float32{0, 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetEmbedding(ctx, "c", []float32{-1, 0}); err != nil {
		t.Fatal(err)
	}

	got, err := store.FindSimilarAssets(ctx, []float32{1, 0}, 2)
	if err != nil {
		t.Fatalf("FindSimilarAssets: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("ranking = %+v, want [a b]", got)
	}
}

func TestFindSimilarAssetsSkipsUnembedded(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	got, err := store.FindSimilarAssets(ctx, []float32{1, 0}, 5)
	if err != nil {
		t.Fatalf("FindSimilarAssets: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("seeded store has no embeddings, got %d results", len(got))
	}
}

func TestScenarioCRUD(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	scenarios, err := store.GetScenarios(ctx)
	if err != nil {
		t.Fatalf("GetScenarios: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("seeded scenario count = %d, want 3", len(scenarios))
	}

	created, err := store.CreateScenario(ctx, catalog.ScenarioDefinition{
		ID:   "4",
		Name: "Pipeline integrity review",
		Stages: []catalog.StageRule{
			{ID: "s4-1", Name: "Survey", RequiredCategories: []string{"巡检影像"}},
		},
	})
	if err != nil {
		t.Fatalf("CreateScenario: %v", err)
	}

	created.Name = "Pipeline integrity campaign"
	if _, err := store.UpdateScenario(ctx, created); err != nil {
		t.Fatalf("UpdateScenario: %v", err)
	}
	got, err := store.GetScenarioByID(ctx, "4")
	if err != nil {
		t.Fatalf("GetScenarioByID: %v", err)
	}
	if got.Name != "Pipeline integrity campaign" {
		t.Fatalf("name = %q", got.Name)
	}

	if err := store.DeleteScenario(ctx, "4"); err != nil {
		t.Fatalf("DeleteScenario: %v", err)
	}
	if _, err := store.GetScenarioByID(ctx, "4"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("deleted scenario returned %v, want ErrNotFound", err)
	}
	if err := store.DeleteScenario(ctx, "4"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("double delete returned %v, want ErrNotFound", err)
	}
}
