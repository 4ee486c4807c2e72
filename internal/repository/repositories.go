// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
package repository

import (
	"github.com/deppfellow/clothes-catalog/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Cloth *ClothRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Cloth: NewClothRepository(s.DB.Pool),
	}
}
