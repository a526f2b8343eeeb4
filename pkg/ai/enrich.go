package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/geomap-asset/backend/pkg/catalog"
)

// maxFigureNoteTokens bounds the figure note fed into the coordinate
// suggestion prompt so oversized vision output cannot blow the context.
const maxFigureNoteTokens = 2048

type coordinateSuggestion struct {
	Object     string `json:"object" jsonschema_description:"Physical subject: oilfield, block, well, station, or pipeline"`
	Business   string `json:"business" jsonschema_description:"Business domain the asset belongs to"`
	Work       string `json:"work" jsonschema_description:"Concrete work task the asset supports"`
	Profession string `json:"profession" jsonschema_description:"Discipline that produced the asset"`
	Process    string `json:"process" jsonschema_description:"Lifecycle stage of the asset"`
}

// ExtractFigureNote runs a vision request against the graphic and returns
// a short textual description suitable for the asset's figure note.
func ExtractFigureNote(
	ctx context.Context,
	client GraphicAIClient,
	image EncodedImage,
) (string, error) {
	note, err := client.GenerateImageDescription(ctx, FigureNotePrompt, image)
	if err != nil {
		return "", fmt.Errorf("figure note extraction failed: %w", err)
	}
	return strings.TrimSpace(note), nil
}

// SuggestCoordinates asks the extraction model for a five-dimensional
// coordinate derived from the asset's title, category, and figure note.
// Dimensions the model cannot ground in the text come back empty.
func SuggestCoordinates(
	ctx context.Context,
	client GraphicAIClient,
	asset *catalog.Asset,
) (catalog.Coordinates5D, error) {
	note, err := truncateTokens(asset.FigureNote, maxFigureNoteTokens)
	if err != nil {
		return catalog.Coordinates5D{}, err
	}

	prompt := fmt.Sprintf(SuggestCoordinatesPrompt, asset.Title, asset.Category, note)

	var suggestion coordinateSuggestion
	err = client.GenerateCompletionWithFormat(
		ctx,
		"semantic_coordinates",
		"Five-dimensional semantic coordinate for a graphic asset",
		prompt,
		&suggestion,
		WithTemperature(0.1),
	)
	if err != nil {
		return catalog.Coordinates5D{}, fmt.Errorf("coordinate suggestion failed: %w", err)
	}

	return catalog.Coordinates5D{
		Object:     strings.TrimSpace(suggestion.Object),
		Business:   strings.TrimSpace(suggestion.Business),
		Work:       strings.TrimSpace(suggestion.Work),
		Profession: strings.TrimSpace(suggestion.Profession),
		Process:    strings.TrimSpace(suggestion.Process),
	}, nil
}

// EmbeddingText flattens the searchable fields of an asset into the text
// that gets embedded for similarity search.
func EmbeddingText(asset *catalog.Asset) string {
	parts := []string{asset.Title, asset.Category, asset.Profession, asset.Oilfield, asset.Stage}
	if asset.Coordinates5D != nil {
		c := asset.Coordinates5D
		parts = append(parts, c.Object, c.Business, c.Work, c.Profession, c.Process)
	}
	if asset.FigureNote != "" {
		parts = append(parts, asset.FigureNote)
	}
	parts = append(parts, asset.Tags...)

	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

func truncateTokens(text string, maxTokens int) (string, error) {
	if text == "" {
		return "", nil
	}
	// A token never spans less than one rune, so short notes skip the
	// encoder round trip.
	if len([]rune(text)) <= maxTokens {
		return text, nil
	}
	enc, err := tiktoken.GetEncoding("o200k_base")
	if err != nil {
		return "", err
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text, nil
	}
	return enc.Decode(tokens[:maxTokens]), nil
}
