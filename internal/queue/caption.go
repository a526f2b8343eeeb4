package queue

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rabbitmq/amqp091-go"

	"github.com/geomap-asset/backend/internal/storage"
	"github.com/geomap-asset/backend/internal/util"
	"github.com/geomap-asset/backend/pkg/ai"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/logger"
)

const aiMaxTries = 2

// ProcessCaptionMessage runs the vision pipeline for one uploaded graphic:
// fetch the file from S3, extract a figure note, derive a 5D coordinate
// suggestion, persist both, then queue an embedding refresh.
//
// The coordinate suggestion never overwrites coordinates an editor already
// mounted by hand.
func ProcessCaptionMessage(
	ctx context.Context,
	s3Client *s3.Client,
	aiClient ai.GraphicAIClient,
	ch *amqp091.Channel,
	store catalog.Store,
	msgBody string,
) error {
	var data CaptionJobMsg
	if err := json.Unmarshal([]byte(msgBody), &data); err != nil {
		return fmt.Errorf("invalid caption job message: %w", err)
	}
	if data.AssetID == "" || data.FileKey == "" {
		return fmt.Errorf("caption job missing asset_id or file_key")
	}

	asset, err := store.GetAssetByID(ctx, data.AssetID)
	if err != nil {
		return fmt.Errorf("failed to load asset %s: %w", data.AssetID, err)
	}

	raw, err := storage.GetFile(ctx, s3Client, data.FileKey)
	if err != nil {
		return err
	}
	contentType, err := storage.GetFileContentType(ctx, s3Client, data.FileKey)
	if err != nil {
		return err
	}

	image := ai.EncodedImage{
		MIMEPrefix: fmt.Sprintf("data:%s;base64,", contentType),
		Base64:     base64.StdEncoding.EncodeToString(raw),
	}

	note, err := util.RetryWithContext(ctx, aiMaxTries, func(ctx context.Context) (string, error) {
		return ai.ExtractFigureNote(ctx, aiClient, image)
	})
	if err != nil {
		return err
	}
	if err := store.SetFigureNote(ctx, asset.ID, note); err != nil {
		return fmt.Errorf("failed to persist figure note for %s: %w", asset.ID, err)
	}
	asset.FigureNote = note

	if asset.HasCoordinates() {
		logger.Debug("[Caption] Asset already mounted, skipping coordinate suggestion", "asset_id", asset.ID)
	} else {
		coords, err := util.RetryWithContext(ctx, aiMaxTries, func(ctx context.Context) (catalog.Coordinates5D, error) {
			return ai.SuggestCoordinates(ctx, aiClient, &asset)
		})
		if err != nil {
			return err
		}
		if err := store.SetCoordinates(ctx, asset.ID, coords); err != nil {
			return fmt.Errorf("failed to persist coordinates for %s: %w", asset.ID, err)
		}
		logger.Info("[Caption] Mounted coordinate suggestion", "asset_id", asset.ID, "object", coords.Object)
	}

	embedMsg, err := json.Marshal(EmbedJobMsg{AssetID: asset.ID})
	if err != nil {
		return err
	}
	if err := PublishFIFO(ch, "embed_queue", embedMsg); err != nil {
		return fmt.Errorf("failed to queue embedding job for %s: %w", asset.ID, err)
	}

	logger.Info("[Caption] Figure note extracted", "asset_id", asset.ID, "note_len", len(note))
	return nil
}
