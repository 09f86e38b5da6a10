package ports

import (
	"context"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

// TokenResult is returned by a successful login.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthService interface {
	// Login resolves identifier as username first, then email, and issues a
	// signed token on success.
	Login(ctx context.Context, identifier, password string) (*TokenResult, error)
	// Authenticate decodes a bearer token and returns the live user record.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// Authorize checks membership of the user's role in the allowed set.
	Authorize(user *domain.User, allowed ...domain.Role) error
}
