// Package model holds the persisted entities and the request/response
// shapes exchanged with HTTP clients, one sub-package per domain.
package model

// MessageResponse is the body of mutating endpoints that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
