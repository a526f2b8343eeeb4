package routes

import (
	"errors"
	"net/http"

	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func DeleteScenarioHandler(c echo.Context) error {
	type deleteScenarioParams struct {
		ID string `param:"id" validate:"required"`
	}

	type deleteScenarioResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteScenarioParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteScenarioResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteScenarioResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	if err := store.DeleteScenario(ctx, params.ID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, deleteScenarioResponse{
				Message: "Scenario not found",
			})
		}
		logger.Error("Failed to delete scenario", "err", err)
		return c.JSON(http.StatusInternalServerError, deleteScenarioResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, deleteScenarioResponse{
		Message: "Scenario deleted successfully",
	})
}
