package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/geomap-asset/backend/pkg/catalog"
)

type fakeClient struct {
	completion string
	formatJSON string
	imageNote  string
	lastPrompt string
}

func (f *fakeClient) GenerateCompletion(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	f.lastPrompt = prompt
	return f.completion, nil
}

func (f *fakeClient) GenerateCompletionWithFormat(ctx context.Context, name, description, prompt string, out any, opts ...GenerateOption) error {
	f.lastPrompt = prompt
	return UnmarshalFlexible(f.formatJSON, out)
}

func (f *fakeClient) GenerateEmbedding(ctx context.Context, input []byte) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

func (f *fakeClient) GenerateImageDescription(ctx context.Context, prompt string, image EncodedImage) (string, error) {
	f.lastPrompt = prompt
	return f.imageNote, nil
}

func (f *fakeClient) ResetMetrics()            {}
func (f *fakeClient) GetMetrics() ModelMetrics { return ModelMetrics{} }

func TestExtractFigureNoteTrimsOutput(t *testing.T) {
	client := &fakeClient{imageNote: "  Structural map of Block1 showing the top Ordovician horizon.\n"}

	note, err := ExtractFigureNote(context.Background(), client, EncodedImage{
		MIMEPrefix: "data:image/png;base64,",
		Base64:     "aGVsbG8=",
	})
	if err != nil {
		t.Fatalf("ExtractFigureNote: %v", err)
	}
	if strings.HasPrefix(note, " ") || strings.HasSuffix(note, "\n") {
		t.Fatalf("figure note not trimmed: %q", note)
	}
}

func TestSuggestCoordinates(t *testing.T) {
	client := &fakeClient{
		formatJSON: `{"object": "W-204H", "business": "CapacityBuild", "work": " WellDesign ", "profession": "Drilling", "process": ""}`,
	}
	asset := &catalog.Asset{
		ID:         "a3",
		Title:      "W-204H well trajectory design",
		Category:   "WellDesign",
		FigureNote: "Deviated well trajectory with target windows.",
	}

	coords, err := SuggestCoordinates(context.Background(), client, asset)
	if err != nil {
		t.Fatalf("SuggestCoordinates: %v", err)
	}
	if coords.Object != "W-204H" || coords.Profession != "Drilling" {
		t.Fatalf("coords = %+v", coords)
	}
	if coords.Work != "WellDesign" {
		t.Fatalf("whitespace not trimmed from work dimension: %q", coords.Work)
	}
	if coords.Process != "" {
		t.Fatalf("empty dimension filled in: %q", coords.Process)
	}
	if !strings.Contains(client.lastPrompt, asset.Title) {
		t.Fatal("prompt does not carry the asset title")
	}
}

func TestEmbeddingTextSkipsEmptyFields(t *testing.T) {
	asset := &catalog.Asset{
		Title:    "Saertu structure map",
		Category: "ExplorationMap",
		Oilfield: "Saertu",
		Tags:     []string{"structure", ""},
		Coordinates5D: &catalog.Coordinates5D{
			Object:     "Block1",
			Profession: "Geology",
		},
	}

	text := EmbeddingText(asset)
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			t.Fatalf("embedding text contains empty line: %q", text)
		}
	}
	for _, want := range []string{"Saertu structure map", "ExplorationMap", "Block1", "Geology", "structure"} {
		if !strings.Contains(text, want) {
			t.Fatalf("embedding text missing %q: %q", want, text)
		}
	}
}
