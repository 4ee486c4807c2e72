package cloth

import (
	"strconv"

	"github.com/deppfellow/clothes-catalog/internal/validation"
)

var validate = validation.NewValidator()

// parseLimit turns the optional :limit path segment into a row cap.
// An empty segment means no cap.
func parseLimit(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, validation.CustomValidationErrors{
			{Field: "limit", Message: "must be a non-negative integer"},
		}
	}
	return &n, nil
}

// ------------------------------------------------------------

// ListClothesRequest is GET /all/:limit?tags=a,b.
type ListClothesRequest struct {
	Limit string `param:"limit"`
	Tags  string `query:"tags"`
}

func (r *ListClothesRequest) Validate() error {
	_, err := parseLimit(r.Limit)
	return err
}

// LimitValue returns the parsed limit, or nil when absent.
func (r *ListClothesRequest) LimitValue() *int {
	n, _ := parseLimit(r.Limit)
	return n
}

// TagList returns the requested filter tags, or nil when none were given.
func (r *ListClothesRequest) TagList() []string {
	return ParseTags(r.Tags)
}

// ListClothesResponse wraps the result when a tag filter was applied.
type ListClothesResponse struct {
	Clothes []Cloth `json:"clothes"`
}

// ------------------------------------------------------------

// ListOrderedRequest is GET /news/:limit and GET /trending/:limit.
type ListOrderedRequest struct {
	Limit string `param:"limit"`
}

func (r *ListOrderedRequest) Validate() error {
	_, err := parseLimit(r.Limit)
	return err
}

func (r *ListOrderedRequest) LimitValue() *int {
	n, _ := parseLimit(r.Limit)
	return n
}

// ------------------------------------------------------------

type GetClothRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetClothRequest) Validate() error {
	return validate.Struct(r)
}

type GetClothResponse struct {
	Cloth *Cloth `json:"cloth"`
}

// ------------------------------------------------------------

// Payload is the full client-supplied body for create and update.
//
// Price is a pointer so that an explicit 0 is accepted while a missing
// price is rejected.
type Payload struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,min=0"`
	Tags        []string `json:"tags" validate:"required,dive,required"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
}

// Data converts a validated payload into the stored shape.
func (p Payload) Data() Data {
	var price float64
	if p.Price != nil {
		price = *p.Price
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Data{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Tags:        tags,
		ImageURL:    p.ImageURL,
	}
}

type CreateClothRequest struct {
	Payload
}

func (r *CreateClothRequest) Validate() error {
	return validate.Struct(r)
}

type CreateClothResponse struct {
	Message      string `json:"message"`
	ClothCreated *Cloth `json:"clothCreated"`
}

// ------------------------------------------------------------

type UpdateClothRequest struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
	Payload
}

func (r *UpdateClothRequest) Validate() error {
	return validate.Struct(r)
}

// ------------------------------------------------------------

type DeleteClothRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteClothRequest) Validate() error {
	return validate.Struct(r)
}
