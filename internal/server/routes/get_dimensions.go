package routes

import (
	"net/http"

	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/pkg/semantic"

	"github.com/labstack/echo/v4"
)

// GetDimensionsHandler exposes the distinct values of the five semantic
// dimensions together with the category and focal-object vocabularies the
// configuration surfaces need.
func GetDimensionsHandler(c echo.Context) error {
	type getDimensionsResponse struct {
		Dimensions   map[string][]string `json:"dimensions"`
		Categories   []string            `json:"categories"`
		FocalObjects []string            `json:"focal_objects"`
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	assets, err := store.GetAllAssets(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	idx := semantic.BuildDimensionIndex(assets)
	dims := make(map[string][]string, 5)
	for _, key := range semantic.DimensionKeys() {
		values := idx.Values(key)
		if values == nil {
			values = []string{}
		}
		dims[string(key)] = values
	}

	return c.JSON(http.StatusOK, getDimensionsResponse{
		Dimensions:   dims,
		Categories:   semantic.DistinctCategories(assets),
		FocalObjects: semantic.FocalObjects(assets),
	})
}
