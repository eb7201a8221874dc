// Package payment talks to the card payment processor.
package payment

import (
	"context"
	"errors"

	"zoomboom/internal/model"
)

// ErrIntentNotFound is returned when the processor has no intent with the given id.
var ErrIntentNotFound = errors.New("payment intent not found")

// Gateway creates payment intents and reads them back.
type Gateway interface {
	// CreateIntent opens an intent for amount in the currency's smallest unit.
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (model.PaymentIntent, error)
	// Intent fetches the intent with id, including its status and metadata.
	Intent(ctx context.Context, id string) (model.PaymentIntent, error)
}
