// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/clothes-catalog/internal/repository"
	"github.com/deppfellow/clothes-catalog/internal/server"
)

type Services struct {
	Auth  *AuthService
	Cloth *ClothService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	var notifier ClothNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Auth:  authService,
		Cloth: NewClothService(repos.Cloth, notifier, s.Logger),
	}, nil
}
