package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

// User mirrors the identity provider profile plus the role this API assigns.
type User struct {
	Email       string    `json:"email" validate:"required,email"`
	Name        string    `json:"name"`
	PhotoURL    string    `json:"photoURL" validate:"omitempty,url"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	Email string
	Role  Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanAccess reports whether the actor may act on data owned by email.
func (a Actor) CanAccess(email string) bool {
	return a.IsAdmin() || (a.Email != "" && a.Email == email)
}
