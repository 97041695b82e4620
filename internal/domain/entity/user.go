package entity

import "time"

// Role is the capability tag on a user account. Closed set: visibility and
// write gating branch on it, so call sites match exhaustively instead of
// comparing free-form strings.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleEmployee  Role = "employee"
	RoleCorporate Role = "corporate"
)

// ParseRole validates a wire-level role string. Empty input falls back to
// the default role, customer.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleEmployee, RoleCorporate:
		return Role(s), true
	case "":
		return RoleCustomer, true
	}
	return "", false
}

// User represents an account holder. PasswordHash is a bcrypt hash, never
// plaintext after registration.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Phone        string
	Name         string
	Role         Role
	CreatedAt    time.Time
}
