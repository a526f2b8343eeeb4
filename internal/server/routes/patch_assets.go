package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/geomap-asset/backend/internal/queue"
	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// EditAssetHandler patches the mutable metadata of an asset. Fields left
// out of the body keep their current value. Edits queue an embedding
// refresh so semantic search tracks the new metadata.
func EditAssetHandler(c echo.Context) error {
	type editAssetBody struct {
		ID              string                 `param:"id" validate:"required"`
		Title           *string                `json:"title,omitempty"`
		Category        *string                `json:"category,omitempty"`
		Profession      *string                `json:"profession,omitempty"`
		Oilfield        *string                `json:"oilfield,omitempty"`
		Stage           *string                `json:"stage,omitempty"`
		GraphicType     *string                `json:"graphic_type,omitempty"`
		SpatialRelation *string                `json:"spatial_relation,omitempty"`
		WellID          *string                `json:"well_id,omitempty"`
		Layer           *string                `json:"layer,omitempty"`
		FigureNote      *string                `json:"figure_note,omitempty"`
		Tags            *[]string              `json:"tags,omitempty"`
		Coordinates5D   *catalog.Coordinates5D `json:"coordinates_5d,omitempty"`
	}

	type editAssetResponse struct {
		Message string         `json:"message"`
		Asset   *catalog.Asset `json:"asset,omitempty"`
	}

	data := new(editAssetBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editAssetResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editAssetResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	asset, err := store.GetAssetByID(ctx, data.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, editAssetResponse{
				Message: "Asset not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, editAssetResponse{
			Message: "Internal server error",
		})
	}

	if asset.Status == catalog.StatusPublished {
		return c.JSON(http.StatusConflict, editAssetResponse{
			Message: "Published assets are immutable",
		})
	}

	if data.Title != nil {
		asset.Title = *data.Title
	}
	if data.Category != nil {
		asset.Category = *data.Category
	}
	if data.Profession != nil {
		asset.Profession = *data.Profession
	}
	if data.Oilfield != nil {
		asset.Oilfield = *data.Oilfield
	}
	if data.Stage != nil {
		asset.Stage = *data.Stage
	}
	if data.GraphicType != nil {
		asset.GraphicType = catalog.GraphicType(*data.GraphicType)
	}
	if data.SpatialRelation != nil {
		asset.SpatialRelation = catalog.SpatialRelation(*data.SpatialRelation)
	}
	if data.WellID != nil {
		asset.WellID = *data.WellID
	}
	if data.Layer != nil {
		asset.Layer = *data.Layer
	}
	if data.FigureNote != nil {
		asset.FigureNote = *data.FigureNote
	}
	if data.Tags != nil {
		asset.Tags = *data.Tags
	}
	if data.Coordinates5D != nil {
		coords := *data.Coordinates5D
		asset.Coordinates5D = &coords
	}
	asset.LastUpdate = time.Now().Format("2006-01-02")

	updated, err := store.UpdateAsset(ctx, asset)
	if err != nil {
		logger.Error("Failed to update asset", "err", err)
		return c.JSON(http.StatusInternalServerError, editAssetResponse{
			Message: "Internal server error",
		})
	}

	msg, err := json.Marshal(queue.EmbedJobMsg{AssetID: updated.ID})
	if err == nil {
		ch := c.(*middleware.AppContext).App.Queue
		if err := queue.PublishFIFO(ch, "embed_queue", msg); err != nil {
			logger.Error("Failed to publish to embed_queue", "err", err)
		}
	}

	return c.JSON(http.StatusOK, editAssetResponse{
		Message: "Asset updated successfully",
		Asset:   &updated,
	})
}
