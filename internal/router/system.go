package router

import (
	"github.com/athleticsdata/athletics-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that sit outside the
// authenticated API: health for load balancers and monitors, plus the
// docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/api/health", h.Health.CheckHealth)

	// openapi.json and openapi.html live under ./static.
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
