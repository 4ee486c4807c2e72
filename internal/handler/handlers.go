// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package, calls the
// service layer and writes the response. Errors are left to the global
// error handler.
package handler

import (
	"github.com/deppfellow/clothes-catalog/internal/server"
	"github.com/deppfellow/clothes-catalog/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Cloth   *ClothHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Cloth:   NewClothHandler(s, services.Cloth),
	}
}
