package domain

import (
	"strings"
	"time"
)

// Role defines what a user may do
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "recepcionista"
	RoleClient       Role = "cliente"
)

// ParseRole converts a stored value into a role
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleReceptionist, RoleClient:
		return r, nil
	}
	return "", ErrUnknownRole
}

// IsStaff returns true for admins and receptionists
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleReceptionist
}

// User is an account of any role
type User struct {
	ID           int64
	Name         string
	Surname      string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool

	CreatedAt time.Time
}

// FullName returns "Name Surname"
func (u *User) FullName() string {
	return u.Name + " " + u.Surname
}

// UserFilter narrows user listings
type UserFilter struct {
	Role       *Role
	StaffOnly  bool
	ActiveOnly bool
}
