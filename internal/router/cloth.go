package router

import (
	"net/http"

	"github.com/deppfellow/clothes-catalog/internal/handler"
	"github.com/deppfellow/clothes-catalog/internal/model/cloth"
	"github.com/labstack/echo/v4"
)

// registerClothRoutes mounts the clothes resource under g. requireAuth
// guards create, update and delete; reads are public.
//
// The fixed /all, /news and /trending prefixes are registered before
// /:id. Echo prefers static segments, so "news" is never taken for an id.
func registerClothRoutes(g *echo.Group, h *handler.ClothHandler, requireAuth echo.MiddlewareFunc) {
	clothes := g.Group("/clothes")

	listAll := handler.Handle(h.Handler, h.ListClothes, http.StatusOK, handler.NewRequest[cloth.ListClothesRequest])
	clothes.GET("/all", listAll)
	clothes.GET("/all/:limit", listAll)

	listNew := handler.Handle(h.Handler, h.ListNewClothes, http.StatusOK, handler.NewRequest[cloth.ListOrderedRequest])
	clothes.GET("/news", listNew)
	clothes.GET("/news/:limit", listNew)

	listTrending := handler.Handle(h.Handler, h.ListTrendingClothes, http.StatusOK, handler.NewRequest[cloth.ListOrderedRequest])
	clothes.GET("/trending", listTrending)
	clothes.GET("/trending/:limit", listTrending)

	clothes.GET("/:id", handler.Handle(h.Handler, h.GetClothByID, http.StatusOK, handler.NewRequest[cloth.GetClothRequest]))

	clothes.POST("", handler.Handle(h.Handler, h.CreateCloth, http.StatusCreated, handler.NewRequest[cloth.CreateClothRequest]), requireAuth)
	clothes.PATCH("/:id", handler.Handle(h.Handler, h.UpdateCloth, http.StatusOK, handler.NewRequest[cloth.UpdateClothRequest]), requireAuth)
	clothes.DELETE("/:id", handler.Handle(h.Handler, h.DeleteCloth, http.StatusOK, handler.NewRequest[cloth.DeleteClothRequest]), requireAuth)
}
