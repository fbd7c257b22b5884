package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 4

var ErrInvalidLogin = errors.New("invalid login")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidUsername = errors.New("invalid username")
var ErrInvalidPassword = errors.New("invalid password")
var ErrCannotDeleteAdmin = errors.New("cannot delete seeded admin")

// User models an authenticated actor in the system.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the two canonical roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// RoleSatisfies reports whether a session role grants the required level.
// Admin capability is a strict superset of staff.
func RoleSatisfies(have, need string) bool {
	switch need {
	case RoleAdmin:
		return have == RoleAdmin
	case RoleStaff:
		return have == RoleStaff || have == RoleAdmin
	}
	return false
}
