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

func GetScenariosHandler(c echo.Context) error {
	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	scenarios, err := store.GetScenarios(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, scenarios)
}

func GetScenarioHandler(c echo.Context) error {
	type getScenarioParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getScenarioResponse struct {
		Message  string                      `json:"message"`
		Scenario *catalog.ScenarioDefinition `json:"scenario,omitempty"`
	}

	params := new(getScenarioParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getScenarioResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getScenarioResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	scenario, err := store.GetScenarioByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getScenarioResponse{
				Message: "Scenario not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getScenarioResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getScenarioResponse{
		Message:  "Scenario found",
		Scenario: &scenario,
	})
}

// GetScenarioTimelineHandler evaluates a scenario against a focal object
// and returns the assets grouped per stage, in declared stage order.
func GetScenarioTimelineHandler(c echo.Context) error {
	type getTimelineParams struct {
		ID     string `param:"id" validate:"required"`
		Object string `query:"object"`
	}

	type getTimelineResponse struct {
		Message string                `json:"message"`
		Stages  []semantic.StageGroup `json:"stages"`
	}

	params := new(getTimelineParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getTimelineResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getTimelineResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	scenario, err := store.GetScenarioByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getTimelineResponse{
				Message: "Scenario not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getTimelineResponse{
			Message: "Internal server error",
		})
	}

	assets, err := store.GetAllAssets(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getTimelineResponse{
			Message: "Internal server error",
		})
	}

	stages, err := semantic.AggregateByScenario(assets, scenario, params.Object)
	if err != nil {
		if errors.Is(err, semantic.ErrNoStages) {
			return c.JSON(http.StatusBadRequest, getTimelineResponse{
				Message: "Scenario has no stages",
			})
		}
		return c.JSON(http.StatusInternalServerError, getTimelineResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getTimelineResponse{
		Message: "Timeline computed",
		Stages:  stages,
	})
}
