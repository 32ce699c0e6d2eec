package service

import (
	"context"
	"fmt"

	"order-admin/internal/domain"
	"order-admin/internal/repository"
)

// UserUpdate holds optional user fields. Nil or empty values leave the stored field unchanged.
type UserUpdate struct {
	Email *string
	Role  *string
}

// UserService describes user lifecycle operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, email, role string) (*domain.User, error)
	Update(ctx context.Context, id string, in UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.users.GetByEmail(ctx, email)
}

func (s *userService) Create(ctx context.Context, email, role string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	r, err := parseRole(role)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, &domain.User{Email: email, Role: r})
}

func (s *userService) Update(ctx context.Context, id string, in UserUpdate) (*domain.User, error) {
	var patch domain.UserPatch
	if in.Email != nil && *in.Email != "" {
		patch.Email = in.Email
	}
	if in.Role != nil && *in.Role != "" {
		r, err := parseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		patch.Role = &r
	}
	return s.users.Update(ctx, id, patch)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func parseRole(raw string) (domain.Role, error) {
	if raw == "" {
		return domain.RoleUser, nil
	}
	r := domain.Role(raw)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, raw)
	}
	return r, nil
}
