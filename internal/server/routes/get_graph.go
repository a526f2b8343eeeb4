package routes

import (
	"errors"
	"net/http"
	"sort"

	"github.com/geomap-asset/backend/internal/server/middleware"
	"github.com/geomap-asset/backend/pkg/semantic"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetGraphHandler derives the knowledge graph for the current catalog
// snapshot. The mode query parameter selects the topology and defaults to
// the object-centric view.
func GetGraphHandler(c echo.Context) error {
	type getGraphParams struct {
		Mode string `query:"mode"`
	}

	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.Mode == "" {
		params.Mode = string(semantic.ModeObjectCentric)
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	assets, err := store.GetAllAssets(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	graph, err := semantic.BuildGraph(assets, semantic.Mode(params.Mode))
	if err != nil {
		if errors.Is(err, semantic.ErrUnknownMode) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown graph mode"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, graph)
}

// GetRelatedNodesHandler returns the one-hop highlight set around a graph
// node, in the same topology the graph was requested with.
func GetRelatedNodesHandler(c echo.Context) error {
	type getRelatedParams struct {
		NodeID string `param:"node_id" validate:"required"`
		Mode   string `query:"mode"`
	}

	type getRelatedResponse struct {
		Message string   `json:"message"`
		NodeIDs []string `json:"node_ids"`
	}

	params := new(getRelatedParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getRelatedResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getRelatedResponse{
			Message: "Invalid request params",
		})
	}
	if params.Mode == "" {
		params.Mode = string(semantic.ModeObjectCentric)
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Store

	assets, err := store.GetAllAssets(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getRelatedResponse{
			Message: "Internal server error",
		})
	}

	graph, err := semantic.BuildGraph(assets, semantic.Mode(params.Mode))
	if err != nil {
		if errors.Is(err, semantic.ErrUnknownMode) {
			return c.JSON(http.StatusBadRequest, getRelatedResponse{
				Message: "Unknown graph mode",
			})
		}
		return c.JSON(http.StatusInternalServerError, getRelatedResponse{
			Message: "Internal server error",
		})
	}

	related := graph.RelatedNodeIDs(params.NodeID)
	ids := make([]string, 0, len(related))
	for id := range related {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return c.JSON(http.StatusOK, getRelatedResponse{
		Message: "Related nodes found",
		NodeIDs: ids,
	})
}
