package handler

import (
	"github.com/deppfellow/clothes-catalog/internal/model"
	"github.com/deppfellow/clothes-catalog/internal/model/cloth"
	"github.com/deppfellow/clothes-catalog/internal/server"
	"github.com/deppfellow/clothes-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

// ClothHandler serves the clothes catalog resource.
type ClothHandler struct {
	Handler
	clothService *service.ClothService
}

func NewClothHandler(s *server.Server, clothService *service.ClothService) *ClothHandler {
	return &ClothHandler{
		Handler:      NewHandler(s),
		clothService: clothService,
	}
}

// NewRequest allocates an empty request for Handle to bind into.
func NewRequest[T any]() *T {
	return new(T)
}

// ListClothes returns the raw list, or {clothes} when a tag filter was
// given.
func (h *ClothHandler) ListClothes(c echo.Context, req *cloth.ListClothesRequest) (any, error) {
	tags := req.TagList()

	clothes, err := h.clothService.ListAll(c.Request().Context(), req.LimitValue(), tags)
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		return &cloth.ListClothesResponse{Clothes: clothes}, nil
	}
	return clothes, nil
}

func (h *ClothHandler) ListNewClothes(c echo.Context, req *cloth.ListOrderedRequest) ([]cloth.Cloth, error) {
	return h.clothService.ListNewest(c.Request().Context(), req.LimitValue())
}

func (h *ClothHandler) ListTrendingClothes(c echo.Context, req *cloth.ListOrderedRequest) ([]cloth.Cloth, error) {
	return h.clothService.ListTrending(c.Request().Context(), req.LimitValue())
}

func (h *ClothHandler) GetClothByID(c echo.Context, req *cloth.GetClothRequest) (*cloth.GetClothResponse, error) {
	found, err := h.clothService.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &cloth.GetClothResponse{Cloth: found}, nil
}

func (h *ClothHandler) CreateCloth(c echo.Context, req *cloth.CreateClothRequest) (*cloth.CreateClothResponse, error) {
	created, err := h.clothService.Create(c.Request().Context(), req.Data())
	if err != nil {
		return nil, err
	}
	return &cloth.CreateClothResponse{
		Message:      "Cloth created",
		ClothCreated: created,
	}, nil
}

func (h *ClothHandler) UpdateCloth(c echo.Context, req *cloth.UpdateClothRequest) (*model.MessageResponse, error) {
	if err := h.clothService.Update(c.Request().Context(), req.ID, req.Data()); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Cloth updated"}, nil
}

func (h *ClothHandler) DeleteCloth(c echo.Context, req *cloth.DeleteClothRequest) (*model.MessageResponse, error) {
	if err := h.clothService.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Cloth deleted"}, nil
}
