package ports

import (
	"context"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
