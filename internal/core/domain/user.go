package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleBasic = "basic"
	RoleAdmin = "admin"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrTooManyAttempts = errors.New("too many login attempts")

// UserID identifies a registered user. Kept as a distinct type so a bare
// string is never passed where a user reference is expected.
type UserID string

// User models a registered account.
type User struct {
	ID           UserID       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Memberships  []Membership `json:"memberships,omitempty"`
}

// Redacted returns a copy safe to hand back to callers: the password hash is
// stripped even from the in-memory representation.
func (u *User) Redacted() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// NormalizeEmail lowercases and trims an email address. Idempotent; every
// lookup and write path must go through it before touching storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
