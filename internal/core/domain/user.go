package domain

import "time"

// Role is the closed set of access tiers. Unknown values are rejected at
// the parse boundary so no gate ever has to reason about free-form strings.
type Role string

const (
	RoleUser  Role = "user"
	RoleHR    Role = "hr"
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw role string into a Role. Values outside the
// closed set fail with ErrUnknownRole; a bad role never grants access.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleHR, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// User models a credentialed account as stored by the persistence layer.
// The core only ever reads it; creation goes through the user service.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
