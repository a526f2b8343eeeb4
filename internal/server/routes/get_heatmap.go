package routes

import (
	"errors"
	"net/http"

	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/semantic"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// Default association facets, matching the analyst review matrix:
// professions on one axis, lifecycle stages on the other.
var (
	heatmapProfessions = []string{"地质", "物探", "油藏", "钻井", "地面", "采油"}
	heatmapStages      = []string{"勘探", "评价", "开发", "生产"}
)

// GetAssetHeatmapHandler computes the profession/stage association matrix
// around a focal asset. The focal asset's own cell always carries the
// strongest intensity.
func GetAssetHeatmapHandler(c echo.Context) error {
	type getHeatmapParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getHeatmapResponse struct {
		Message     string                 `json:"message"`
		Professions []string               `json:"professions"`
		Stages      []string               `json:"stages"`
		Cells       []semantic.HeatmapCell `json:"cells"`
	}

	params := new(getHeatmapParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getHeatmapResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getHeatmapResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	focus, err := store.GetAssetByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getHeatmapResponse{
				Message: "Asset not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getHeatmapResponse{
			Message: "Internal server error",
		})
	}

	assets, err := store.GetAllAssets(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getHeatmapResponse{
			Message: "Internal server error",
		})
	}

	cells := semantic.ComputeHeatmap(assets, heatmapProfessions, heatmapStages, focus)

	return c.JSON(http.StatusOK, getHeatmapResponse{
		Message:     "Heatmap computed",
		Professions: heatmapProfessions,
		Stages:      heatmapStages,
		Cells:       cells,
	})
}
