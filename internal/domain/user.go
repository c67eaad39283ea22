package domain

import (
	"time"
)

type User struct {
	ID           int64      `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password"`
	Role         UserRole   `json:"role" db:"role"`
	Status       UserStatus `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// UserWithListings is the admin view of a user.
type UserWithListings struct {
	User
	ListingCount int64 `json:"listing_count" db:"listing_count"`
}

type CreateUserInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AdminUpdateUserInput carries both fields; neither may be omitted.
type AdminUpdateUserInput struct {
	Role   UserRole   `json:"role"`
	Status UserStatus `json:"status"`
}

type AuthResult struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusBlocked UserStatus = "blocked"
)

func (s UserStatus) IsValid() bool {
	return s == StatusActive || s == StatusBlocked
}

func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

func (u *User) IsBlocked() bool {
	return u.Status == StatusBlocked
}

func (u *User) HasRole(requiredRole UserRole) bool {
	switch requiredRole {
	case RoleAdmin:
		return u.Role == RoleAdmin
	case RoleSeller:
		return u.Role == RoleSeller || u.Role == RoleAdmin
	case RoleBuyer:
		return u.Role.IsValid()
	default:
		return false
	}
}

// Actor is the identity an authorization decision is made for.
type Actor struct {
	ID   int64
	Role UserRole
}
