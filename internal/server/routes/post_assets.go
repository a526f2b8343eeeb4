package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/geomap-asset/backend/internal/queue"
	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/internal/storage"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// CreateAssetHandler registers a new graphic asset from multipart/form-data.
// The uploaded file goes to object storage and a caption job is queued so
// the worker can extract a figure note and suggest 5D coordinates.
func CreateAssetHandler(c echo.Context) error {
	type createAssetBody struct {
		Title           string   `form:"title" validate:"required"`
		Category        string   `form:"category" validate:"required"`
		Profession      string   `form:"profession"`
		Oilfield        string   `form:"oilfield"`
		Stage           string   `form:"stage"`
		GraphicType     string   `form:"graphic_type"`
		SpatialRelation string   `form:"spatial_relation"`
		WellID          string   `form:"well_id"`
		Layer           string   `form:"layer"`
		Source          string   `form:"source"`
		ProjectName     string   `form:"project_name"`
		Tags            []string `form:"tags"`
	}

	type createAssetResponse struct {
		Message string         `json:"message"`
		Asset   *catalog.Asset `json:"asset,omitempty"`
	}

	data := new(createAssetBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createAssetResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createAssetResponse{
			Message: "Invalid request body",
		})
	}

	id, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createAssetResponse{
			Message: "Internal server error",
		})
	}

	ctx := c.Request().Context()
	s3Client := c.(*middleware.AppContext).App.S3

	fileKey := ""
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, createAssetResponse{
				Message: "Could not open file",
			})
		}
		defer src.Close()

		fId, err := gonanoid.New()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, createAssetResponse{
				Message: "Internal server error",
			})
		}
		fileKey, err = storage.PutFile(
			ctx,
			s3Client,
			fmt.Sprintf("assets/%s/files", id),
			file.Filename,
			fId,
			src,
		)
		if err != nil {
			logger.Error("Failed to upload file", "err", err)
			return c.JSON(http.StatusInternalServerError, createAssetResponse{
				Message: "Internal server error",
			})
		}
	}

	now := time.Now().Format("2006-01-02")
	asset := catalog.Asset{
		ID:         id,
		Title:      data.Title,
		Category:   data.Category,
		Profession: data.Profession,
		Oilfield:   data.Oilfield,
		Stage:      data.Stage,

		SpatialRelation: catalog.SpatialRelation(data.SpatialRelation),
		WellID:          data.WellID,
		Layer:           data.Layer,
		GraphicType:     catalog.GraphicType(data.GraphicType),

		FileKey: fileKey,
		Version: "V1.0",
		Status:  catalog.StatusDraft,
		Tags:    data.Tags,

		Source:       data.Source,
		ProjectName:  data.ProjectName,
		CreationTime: now,
		LastUpdate:   now,
	}

	store := c.(*middleware.AppContext).App.Store
	created, err := store.CreateAsset(ctx, asset)
	if err != nil {
		logger.Error("Failed to create asset", "err", err)
		return c.JSON(http.StatusInternalServerError, createAssetResponse{
			Message: "Internal server error",
		})
	}

	if fileKey != "" {
		msg, err := json.Marshal(queue.CaptionJobMsg{
			AssetID: created.ID,
			FileKey: fileKey,
		})
		if err == nil {
			ch := c.(*middleware.AppContext).App.Queue
			if err := queue.PublishFIFO(ch, "caption_queue", msg); err != nil {
				logger.Error("Failed to publish to caption_queue", "err", err)
			}
		}
	}

	return c.JSON(http.StatusOK, createAssetResponse{
		Message: "Asset created successfully",
		Asset:   &created,
	})
}

// UpdateAssetStatusHandler moves an asset through the review workflow.
// Illegal transitions (for example publishing a draft directly) are
// rejected without touching the asset.
func UpdateAssetStatusHandler(c echo.Context) error {
	type updateStatusBody struct {
		ID     string `param:"id" validate:"required"`
		Status string `json:"status" validate:"required"`
	}

	type updateStatusResponse struct {
		Message string         `json:"message"`
		Asset   *catalog.Asset `json:"asset,omitempty"`
	}

	data := new(updateStatusBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateStatusResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateStatusResponse{
			Message: "Invalid request body",
		})
	}

	target := catalog.Status(data.Status)
	if !catalog.ValidStatus(target) {
		return c.JSON(http.StatusBadRequest, updateStatusResponse{
			Message: "Unknown status",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	asset, err := store.GetAssetByID(ctx, data.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, updateStatusResponse{
				Message: "Asset not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, updateStatusResponse{
			Message: "Internal server error",
		})
	}

	if !catalog.CanTransition(asset.Status, target) {
		return c.JSON(http.StatusBadRequest, updateStatusResponse{
			Message: fmt.Sprintf("Cannot move asset from %s to %s", asset.Status, target),
		})
	}

	updated, err := store.UpdateStatus(ctx, data.ID, target)
	if err != nil {
		logger.Error("Failed to update asset status", "err", err)
		return c.JSON(http.StatusInternalServerError, updateStatusResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, updateStatusResponse{
		Message: "Status updated successfully",
		Asset:   &updated,
	})
}
