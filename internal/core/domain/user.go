package domain

import (
	"errors"
	"time"
)

// Role is the RBAC role carried by every user record and token.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Valid reports whether r is one of the known roles. An empty or unknown
// role is never valid: authorization fails closed instead of downgrading
// a broken record to guest.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

var (
	// ErrInvalidCredentials covers both "user not found" and "wrong password"
	// at login so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrInactiveUser       = errors.New("inactive user")
	ErrInsufficientRole   = errors.New("not enough permissions")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// User models an account held by the credential store.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	Role         Role      `json:"role"`
	Active       bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
