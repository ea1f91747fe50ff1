package usecase

import (
	"context"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// ListUsersService returns the account read model.
type ListUsersService struct {
	userRepo port.UserRepositoryPort
}

func NewListUsersService(userRepo port.UserRepositoryPort) *ListUsersService {
	return &ListUsersService{userRepo: userRepo}
}

func (s *ListUsersService) Execute(ctx context.Context, limit, offset *int) ([]domain.User, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	return s.userRepo.ListUsers(ctx, limit, offset)
}
