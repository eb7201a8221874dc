package repository

import (
	"context"

	"zoomboom/internal/model"
)

// ProfileUpdate carries the optional profile fields a user may change.
type ProfileUpdate struct {
	Name     *string
	PhotoURL *string
}

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Upsert inserts the user or refreshes name, photo and last login of an existing one.
	// Role and creation time of an existing user are kept.
	Upsert(ctx context.Context, u *model.User) (*model.User, error)

	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateProfile returns the number of rows changed.
	UpdateProfile(ctx context.Context, email string, p ProfileUpdate) (int64, error)
}
