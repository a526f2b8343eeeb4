package server

import (
	"github.com/geomap-asset/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Asset routes
	apiRoutes.GET("/assets", routes.GetAssetsHandler)
	apiRoutes.POST("/assets", routes.CreateAssetHandler)
	apiRoutes.GET("/assets/:id", routes.GetAssetHandler)
	apiRoutes.PATCH("/assets/:id", routes.EditAssetHandler)
	apiRoutes.POST("/assets/:id/status", routes.UpdateAssetStatusHandler)
	apiRoutes.GET("/assets/:id/heatmap", routes.GetAssetHeatmapHandler)
	apiRoutes.GET("/assets/:id/file", routes.GetAssetFileHandler)

	// Semantic search
	apiRoutes.POST("/search", routes.SearchAssetsHandler)

	// Derived structure routes
	apiRoutes.GET("/dimensions", routes.GetDimensionsHandler)
	apiRoutes.GET("/graph", routes.GetGraphHandler)
	apiRoutes.GET("/graph/related/:node_id", routes.GetRelatedNodesHandler)

	// Scenario routes
	apiRoutes.GET("/scenarios", routes.GetScenariosHandler)
	apiRoutes.POST("/scenarios", routes.CreateScenarioHandler)
	apiRoutes.GET("/scenarios/:id", routes.GetScenarioHandler)
	apiRoutes.PATCH("/scenarios/:id", routes.EditScenarioHandler)
	apiRoutes.DELETE("/scenarios/:id", routes.DeleteScenarioHandler)
	apiRoutes.GET("/scenarios/:id/timeline", routes.GetScenarioTimelineHandler)
}
