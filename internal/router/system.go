package router

import (
	"github.com/deppfellow/clothes-catalog/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts endpoints outside the versioned API: the
// health check and the docs UI with its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
