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

type scenarioStageBody struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name" validate:"required"`
	RequiredCategories []string `json:"required_categories" validate:"required"`
}

// CreateScenarioHandler stores a new scenario definition. Stage order in
// the request body is the evaluation order.
func CreateScenarioHandler(c echo.Context) error {
	type createScenarioBody struct {
		Name        string              `json:"name" validate:"required"`
		Icon        string              `json:"icon"`
		Description string              `json:"description"`
		Stages      []scenarioStageBody `json:"stages" validate:"required,dive"`
	}

	type createScenarioResponse struct {
		Message  string                      `json:"message"`
		Scenario *catalog.ScenarioDefinition `json:"scenario,omitempty"`
	}

	data := new(createScenarioBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createScenarioResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createScenarioResponse{
			Message: "Invalid request body",
		})
	}

	id, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createScenarioResponse{
			Message: "Internal server error",
		})
	}

	scenario := catalog.ScenarioDefinition{
		ID:          id,
		Name:        data.Name,
		Icon:        data.Icon,
		Description: data.Description,
		UpdatedAt:   time.Now().Format("2006-01-02"),
		Stages:      make([]catalog.StageRule, 0, len(data.Stages)),
	}
	for _, stage := range data.Stages {
		stageID := stage.ID
		if stageID == "" {
			stageID, err = gonanoid.New()
			if err != nil {
				return c.JSON(http.StatusInternalServerError, createScenarioResponse{
					Message: "Internal server error",
				})
			}
		}
		scenario.Stages = append(scenario.Stages, catalog.StageRule{
			ID:                 stageID,
			Name:               stage.Name,
			RequiredCategories: stage.RequiredCategories,
		})
	}

	if err := semantic.ValidateScenario(scenario); err != nil {
		if errors.Is(err, semantic.ErrNoStages) {
			return c.JSON(http.StatusBadRequest, createScenarioResponse{
				Message: "Scenario needs at least one stage",
			})
		}
		return c.JSON(http.StatusBadRequest, createScenarioResponse{
			Message: "Invalid scenario definition",
		})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	created, err := store.CreateScenario(ctx, scenario)
	if err != nil {
		logger.Error("Failed to create scenario", "err", err)
		return c.JSON(http.StatusInternalServerError, createScenarioResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createScenarioResponse{
		Message:  "Scenario created successfully",
		Scenario: &created,
	})
}
