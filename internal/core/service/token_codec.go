package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// Claims is the decoded payload of an access token.
type Claims struct {
	Subject   string
	UserID    string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec signs and verifies HS256 access tokens. Changing the secret
// invalidates every previously issued token.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Encode issues a signed token for the user. Expiry is always issued-at
// plus the configured lifetime.
func (c *TokenCodec) Encode(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(c.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the embedded claims.
// Absent optional fields are not an error here; the caller validates that
// subject and user id are present.
func (c *TokenCodec) Decode(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	out := &Claims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if id, ok := claims["user_id"].(string); ok {
		out.UserID = id
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = domain.Role(role)
	}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
