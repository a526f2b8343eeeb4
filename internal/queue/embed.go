package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/geomap-asset/backend/internal/util"
	"github.com/geomap-asset/backend/pkg/ai"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/logger"
)

// ProcessEmbedMessage recomputes the similarity-search embedding for one
// asset from its current searchable text.
func ProcessEmbedMessage(
	ctx context.Context,
	aiClient ai.GraphicAIClient,
	store catalog.Store,
	msgBody string,
) error {
	var data EmbedJobMsg
	if err := json.Unmarshal([]byte(msgBody), &data); err != nil {
		return fmt.Errorf("invalid embed job message: %w", err)
	}
	if data.AssetID == "" {
		return fmt.Errorf("embed job missing asset_id")
	}

	asset, err := store.GetAssetByID(ctx, data.AssetID)
	if err != nil {
		return fmt.Errorf("failed to load asset %s: %w", data.AssetID, err)
	}

	text := ai.EmbeddingText(&asset)
	embedding, err := util.RetryWithContext(ctx, aiMaxTries, func(ctx context.Context) ([]float32, error) {
		return aiClient.GenerateEmbedding(ctx, []byte(text))
	})
	if err != nil {
		return err
	}

	if err := store.SetEmbedding(ctx, asset.ID, embedding); err != nil {
		return fmt.Errorf("failed to persist embedding for %s: %w", asset.ID, err)
	}

	logger.Info("[Embed] Embedding refreshed", "asset_id", asset.ID, "dims", len(embedding))
	return nil
}
