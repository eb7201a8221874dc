package repository

import (
	"context"
	"time"

	"zoomboom/internal/model"
)

// RiderFilter narrows a rider listing. Search matches name or email, case-insensitively.
type RiderFilter struct {
	Status model.RiderStatus
	Search string
}

// StatusChange moves a rider application From one status To another.
// A non-nil Role is written to both the application and the user account.
type StatusChange struct {
	From model.RiderStatus
	To   model.RiderStatus
	Role *model.Role
	At   time.Time
}

// RiderRepository defines data access for rider applications.
type RiderRepository interface {
	// Create inserts an application. A second application for the same email returns ErrDuplicate.
	Create(ctx context.Context, r *model.Rider) (*model.Rider, error)

	FindByID(ctx context.Context, id string) (*model.Rider, error)

	// List returns applications newest first.
	List(ctx context.Context, f RiderFilter) ([]model.Rider, error)

	// ChangeStatus applies c in one transaction and returns the number of applications changed.
	// Zero means the application was no longer in c.From.
	ChangeStatus(ctx context.Context, id string, c StatusChange) (int64, error)
}
