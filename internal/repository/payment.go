package repository

import (
	"context"

	"zoomboom/internal/model"
)

// PaymentFilter narrows a payment listing. An empty Email lists every payment.
type PaymentFilter struct {
	Email string
}

// PaymentRepository defines data access for settled payments.
type PaymentRepository interface {
	// CreateForParcel inserts the payment and moves its parcel from Pending to Paid
	// in one transaction. It returns the number of parcels changed.
	// ErrStale means the parcel was not Pending; ErrDuplicate means the
	// transaction id was already recorded. Nothing is written in either case.
	CreateForParcel(ctx context.Context, p *model.Payment) (int64, error)

	// List returns payments newest first.
	List(ctx context.Context, f PaymentFilter) ([]model.Payment, error)
}
