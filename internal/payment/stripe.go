package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"zoomboom/internal/model"
)

// StripeGateway implements Gateway with Stripe payment intents.
type StripeGateway struct {
	api *client.API
}

var _ Gateway = (*StripeGateway)(nil)

// NewStripe builds a gateway that sends every request through httpClient.
// A nil httpClient uses the library default.
func NewStripe(secretKey string, httpClient *http.Client) *StripeGateway {
	return newStripe(secretKey, &stripe.BackendConfig{HTTPClient: httpClient})
}

func newStripe(secretKey string, cfg *stripe.BackendConfig) *StripeGateway {
	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	}
	return &StripeGateway{api: client.New(secretKey, backends)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return model.PaymentIntent{}, fmt.Errorf("stripe create intent: %w", err)
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) Intent(ctx context.Context, id string) (model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && serr.HTTPStatusCode == http.StatusNotFound {
			return model.PaymentIntent{}, fmt.Errorf("%w: %s", ErrIntentNotFound, id)
		}
		return model.PaymentIntent{}, fmt.Errorf("stripe get intent: %w", err)
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) model.PaymentIntent {
	return model.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		Metadata:     pi.Metadata,
	}
}
