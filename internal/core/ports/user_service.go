package ports

import (
	"context"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

// CreateUserInput carries a validated user-create payload into the service.
type CreateUserInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     domain.Role
	Active   bool
}

type UserService interface {
	// Register creates a self-service account. The role in the input is
	// ignored and forced to user.
	Register(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// CreateUser creates an account with the role honored as given.
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// ChangePassword verifies the current password before storing a new hash.
	ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error
	ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error)
	// DeleteUser removes the target account. The actor may not delete itself,
	// regardless of role.
	DeleteUser(ctx context.Context, actor *domain.User, targetID string) error
}
