package service

import (
	"context"
	"strings"

	"github.com/mlserve/sentiment-api/internal/core/domain"
	"github.com/mlserve/sentiment-api/internal/core/ports"
)

// UserService implements account management on top of the user repository.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a self-service account. The requested role is discarded
// and forced to user.
func (s *UserService) Register(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	in.Role = domain.RoleUser
	return s.create(ctx, in)
}

// CreateUser creates an account with the role honored as given. An empty
// role defaults to user.
func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Role == "" {
		in.Role = domain.RoleUser
	}
	return s.create(ctx, in)
}

func (s *UserService) create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         in.Role,
		Active:       in.Active,
		PasswordHash: hash,
	}
	return s.repo.Create(ctx, user)
}

// ChangePassword verifies the current password against the authenticated
// user's stored hash before writing the new one. A wrong current password
// leaves the record untouched.
func (s *UserService) ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(ctx, user.ID, hash)
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return s.repo.List(ctx, skip, limit)
}

// DeleteUser hard-removes the target account. The self-delete check runs
// before any store mutation, even for admins.
func (s *UserService) DeleteUser(ctx context.Context, actor *domain.User, targetID string) error {
	targetID = strings.TrimSpace(targetID)
	if targetID == actor.ID {
		return domain.ErrSelfDelete
	}
	return s.repo.Delete(ctx, targetID)
}
