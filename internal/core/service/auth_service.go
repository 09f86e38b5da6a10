package service

import (
	"context"
	"errors"

	"github.com/mlserve/sentiment-api/internal/core/domain"
	"github.com/mlserve/sentiment-api/internal/core/ports"
)

// AuthService implements login, per-request authentication and role checks.
type AuthService struct {
	repo  ports.UserRepository
	codec *TokenCodec
}

func NewAuthService(repo ports.UserRepository, codec *TokenCodec) *AuthService {
	return &AuthService{repo: repo, codec: codec}
}

// Login resolves the identifier as a username first, then as an email.
// Every failure path returns domain.ErrInvalidCredentials so callers cannot
// tell a missing account from a wrong password.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.TokenResult, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, identifier)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.repo.FindByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Encode(user)
	if err != nil {
		return nil, err
	}

	return &ports.TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.codec.TTL().Seconds()),
	}, nil
}

// Authenticate turns a raw bearer token into the live user record.
// A structurally valid token is still rejected when it lacks a subject or
// user id, when the referenced user no longer exists, or when the account
// has been deactivated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if claims.Subject == "" || claims.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if !user.Active {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}

// Authorize is a plain set-membership test. There is no role hierarchy:
// admin does not imply user unless the allowed set names both.
func (s *AuthService) Authorize(user *domain.User, allowed ...domain.Role) error {
	for _, r := range allowed {
		if user.Role == r {
			return nil
		}
	}
	return domain.ErrInsufficientRole
}
