package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/logger"
	"github.com/geomap-asset/backend/pkg/semantic"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// EditScenarioHandler replaces the mutable parts of a scenario definition.
// When stages are supplied they replace the existing set wholesale.
func EditScenarioHandler(c echo.Context) error {
	type editScenarioBody struct {
		ID          string               `param:"id" validate:"required"`
		Name        *string              `json:"name,omitempty"`
		Icon        *string              `json:"icon,omitempty"`
		Description *string              `json:"description,omitempty"`
		Stages      *[]scenarioStageBody `json:"stages,omitempty" validate:"omitempty,dive"`
	}

	type editScenarioResponse struct {
		Message  string                      `json:"message"`
		Scenario *catalog.ScenarioDefinition `json:"scenario,omitempty"`
	}

	data := new(editScenarioBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editScenarioResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editScenarioResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	scenario, err := store.GetScenarioByID(ctx, data.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, editScenarioResponse{
				Message: "Scenario not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, editScenarioResponse{
			Message: "Internal server error",
		})
	}

	if data.Name != nil {
		scenario.Name = *data.Name
	}
	if data.Icon != nil {
		scenario.Icon = *data.Icon
	}
	if data.Description != nil {
		scenario.Description = *data.Description
	}
	if data.Stages != nil {
		stages := make([]catalog.StageRule, 0, len(*data.Stages))
		for _, stage := range *data.Stages {
			stageID := stage.ID
			if stageID == "" {
				stageID, err = gonanoid.New()
				if err != nil {
					return c.JSON(http.StatusInternalServerError, editScenarioResponse{
						Message: "Internal server error",
					})
				}
			}
			stages = append(stages, catalog.StageRule{
				ID:                 stageID,
				Name:               stage.Name,
				RequiredCategories: stage.RequiredCategories,
			})
		}
		scenario.Stages = stages
	}
	scenario.UpdatedAt = time.Now().Format("2006-01-02")

	if err := semantic.ValidateScenario(scenario); err != nil {
		return c.JSON(http.StatusBadRequest, editScenarioResponse{
			Message: "Scenario needs at least one stage",
		})
	}

	updated, err := store.UpdateScenario(ctx, scenario)
	if err != nil {
		logger.Error("Failed to update scenario", "err", err)
		return c.JSON(http.StatusInternalServerError, editScenarioResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, editScenarioResponse{
		Message:  "Scenario updated successfully",
		Scenario: &updated,
	})
}
