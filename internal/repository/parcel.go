package repository

import (
	"context"
	"time"

	"zoomboom/internal/model"
)

// ParcelFilter narrows a parcel listing. An empty Email lists every parcel.
type ParcelFilter struct {
	Email string
}

// ParcelRepository defines data access for booked parcels.
type ParcelRepository interface {
	// Create inserts a parcel and returns the stored row.
	Create(ctx context.Context, p *model.Parcel) (*model.Parcel, error)

	FindByID(ctx context.Context, id string) (*model.Parcel, error)

	// List returns parcels newest first.
	List(ctx context.Context, f ParcelFilter) ([]model.Parcel, error)

	// UpdatePending rewrites the draft fields and fee of a parcel that is still Pending.
	// It returns the number of rows changed.
	UpdatePending(ctx context.Context, id string, d model.ParcelDraft, totalCost int, at time.Time) (int64, error)

	// DeletePending removes a parcel that is still Pending and returns the number of rows removed.
	DeletePending(ctx context.Context, id string) (int64, error)
}
