package routes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/internal/storage"
	"github.com/geomap-asset/backend/pkg/catalog"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetAssetsHandler(c echo.Context) error {
	type getAssetsParams struct {
		Status     string `query:"status"`
		Oilfield   string `query:"oilfield"`
		Profession string `query:"profession"`
		Query      string `query:"q"`
	}

	params := new(getAssetsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	if params.Status != "" && !catalog.ValidStatus(catalog.Status(params.Status)) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown status"})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	assets, err := store.GetAllAssets(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	filtered := make([]catalog.Asset, 0, len(assets))
	for _, a := range assets {
		if params.Status != "" && a.Status != catalog.Status(params.Status) {
			continue
		}
		if params.Oilfield != "" && a.Oilfield != params.Oilfield {
			continue
		}
		if params.Profession != "" && a.Profession != params.Profession {
			continue
		}
		if params.Query != "" && !matchesQuery(&a, params.Query) {
			continue
		}
		filtered = append(filtered, a)
	}

	return c.JSON(http.StatusOK, filtered)
}

// matchesQuery is the keyword fallback for clients without semantic search:
// a case-insensitive substring match over title, figure note and tags.
func matchesQuery(a *catalog.Asset, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.FigureNote), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func GetAssetHandler(c echo.Context) error {
	type getAssetParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getAssetResponse struct {
		Message string         `json:"message"`
		Asset   *catalog.Asset `json:"asset,omitempty"`
	}

	params := new(getAssetParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getAssetResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getAssetResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	asset, err := store.GetAssetByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getAssetResponse{
				Message: "Asset not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getAssetResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getAssetResponse{
		Message: "Asset found",
		Asset:   &asset,
	})
}

func GetAssetFileHandler(c echo.Context) error {
	type getAssetFileParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getAssetFileResponse struct {
		Message string `json:"message"`
	}

	params := new(getAssetFileParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getAssetFileResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getAssetFileResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	asset, err := store.GetAssetByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getAssetFileResponse{
				Message: "Asset not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getAssetFileResponse{
			Message: "Internal server error",
		})
	}
	if asset.FileKey == "" {
		return c.JSON(http.StatusNotFound, getAssetFileResponse{
			Message: "Asset has no stored file",
		})
	}

	s3Client := c.(*middleware.AppContext).App.S3

	url, err := storage.GenerateDownloadLink(ctx, s3Client, asset.FileKey)
	if err != nil {
		return c.JSON(http.StatusNotFound, getAssetFileResponse{
			Message: "File does not exist",
		})
	}

	return c.JSON(http.StatusOK, getAssetFileResponse{
		Message: url,
	})
}
