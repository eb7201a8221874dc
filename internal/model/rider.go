package model

import "time"

// RiderStatus tracks an application through review.
type RiderStatus string

const (
	RiderStatusPending     RiderStatus = "pending"
	RiderStatusVerified    RiderStatus = "verified"
	RiderStatusRejected    RiderStatus = "rejected"
	RiderStatusDeactivated RiderStatus = "deactivated"
)

// RiderApplication is the onboarding form payload.
type RiderApplication struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,bdphone"`
	NID         string `json:"nid" validate:"min=10"`
	Region      string `json:"region" validate:"required"`
	District    string `json:"district" validate:"required"`
	License     string `json:"license" validate:"min=5"`
	BikeDetails string `json:"bikeDetails" validate:"required"`
	BikeReg     string `json:"bikeReg" validate:"required"`
	Bio         string `json:"bio" validate:"min=10"`
	RiderImage  string `json:"riderImage" validate:"required,url"`
	UserPhoto   string `json:"userPhoto" validate:"omitempty,url"`
}

// Rider is a stored rider application.
type Rider struct {
	RiderApplication

	ID        string      `json:"_id"`
	Status    RiderStatus `json:"status"`
	Role      Role        `json:"role"`
	AppliedAt time.Time   `json:"appliedAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Valid reports whether s is one of the known statuses.
func (s RiderStatus) Valid() bool {
	switch s {
	case RiderStatusPending, RiderStatusVerified, RiderStatusRejected, RiderStatusDeactivated:
		return true
	}
	return false
}
