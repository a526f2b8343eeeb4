package routes

import (
	"net/http"

	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/pkg/ai"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// SearchAssetsHandler runs a semantic similarity search: the query text is
// embedded with the configured model and matched against the stored asset
// vectors by cosine distance.
func SearchAssetsHandler(c echo.Context) error {
	type searchAssetsBody struct {
		Query string `json:"query" validate:"required"`
		Limit int    `json:"limit"`
	}

	type searchAssetsResponse struct {
		Message string           `json:"message"`
		Assets  []catalog.Asset  `json:"assets"`
		Metrics *ai.ModelMetrics `json:"metrics,omitempty"`
	}

	data := new(searchAssetsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, searchAssetsResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, searchAssetsResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	aiClient := c.(*middleware.AppContext).App.AiClient

	embedding, err := aiClient.GenerateEmbedding(ctx, []byte(data.Query))
	if err != nil {
		logger.Error("[Search] Failed to embed query", "err", err)
		return c.JSON(http.StatusInternalServerError, searchAssetsResponse{
			Message: "Internal server error",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	assets, err := store.FindSimilarAssets(ctx, embedding, data.Limit)
	if err != nil {
		logger.Error("[Search] Similarity query failed", "err", err)
		return c.JSON(http.StatusInternalServerError, searchAssetsResponse{
			Message: "Internal server error",
		})
	}

	metrics := aiClient.GetMetrics()
	return c.JSON(http.StatusOK, searchAssetsResponse{
		Message: "Search completed",
		Assets:  assets,
		Metrics: &metrics,
	})
}
