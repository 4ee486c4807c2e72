// Package router builds the Echo instance: global middleware in order,
// system routes, and the versioned API groups.
package router

import (
	"github.com/deppfellow/clothes-catalog/internal/handler"
	"github.com/deppfellow/clothes-catalog/internal/middleware"
	"github.com/deppfellow/clothes-catalog/internal/server"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// newEcho returns a bare Echo instance with the error handler installed.
// Trailing slashes are stripped before routing, so "/clothes/all/" is
// served by "/clothes/all" instead of being read as an empty :id or
// :limit.
func newEcho(errorHandler echo.HTTPErrorHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.Pre(echomw.RemoveTrailingSlash())
	return e
}

// NewRouter wires middleware and routes. Order matters: the request ID
// must exist before tracing and the context logger read it, and the
// context logger must exist before the request logger uses it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := newEcho(middlewares.Global.GlobalErrorHandler)

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerClothRoutes(v1, h.Cloth, middlewares.Auth.RequireAuth)

	return router
}
