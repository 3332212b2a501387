package domain

import (
	"strings"
	"time"
)

// Role is the closed authorization enumeration. There are exactly two
// values; anything else coerces to RoleUser.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// CoerceRole maps arbitrary client input onto the closed role set.
// Unknown or empty values become RoleUser.
func CoerceRole(s string) Role {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s)
	default:
		return RoleUser
	}
}

// NormalizeUsername trims surrounding whitespace and lower-cases the name.
// Every comparison and every stored username goes through this first.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// User models one account. PasswordHash is opaque to everything except the
// credential hasher and is never serialized outward.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
