package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", 30*time.Minute)
	user := &domain.User{ID: "user_1", Username: "alice", Role: domain.RoleAdmin}

	token, err := codec.Encode(user)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("expected user id user_1, got %q", claims.UserID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != 30*time.Minute {
		t.Fatalf("expected expiry = issued-at + lifetime, got %v", got)
	}
}

func TestTokenCodec_DefaultTTL(t *testing.T) {
	codec := NewTokenCodec("secret", 0)
	if codec.TTL() != defaultTokenTTL {
		t.Fatalf("expected default TTL, got %v", codec.TTL())
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("secret", time.Minute)

	past := time.Now().Add(-time.Hour)
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     "alice",
		"user_id": "user_1",
		"iat":     past.Unix(),
		"exp":     past.Add(time.Minute).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Decode(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec("secret-a", time.Minute)
	verifier := NewTokenCodec("secret-b", time.Minute)

	token, err := issuer.Encode(&domain.User{ID: "u1", Username: "bob", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := verifier.Decode(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("secret", time.Minute)
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := codec.Decode(raw); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestTokenCodec_RejectsOtherAlgorithms(t *testing.T) {
	codec := NewTokenCodec("secret", time.Minute)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":     "alice",
		"user_id": "user_1",
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := codec.Decode(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestTokenCodec_MissingOptionalFields(t *testing.T) {
	codec := NewTokenCodec("secret", time.Minute)

	// The codec itself does not require subject or user id; that check
	// belongs to the caller.
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "user",
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := codec.Decode(signed)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims.Subject != "" || claims.UserID != "" {
		t.Fatalf("expected empty subject and user id, got %+v", claims)
	}
}
