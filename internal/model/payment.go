package model

import "time"

const (
	PaymentStatusPaid = "Paid"

	IntentStatusSucceeded = "succeeded"
)

// Payment records a settled charge for a parcel.
type Payment struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transactionId"`
	Price         int       `json:"price"`
	ParcelID      string    `json:"parcelId"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

// PaymentIntent is the gateway handle the client confirms with its card SDK.
type PaymentIntent struct {
	ID           string `json:"paymentIntentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`

	Status   string            `json:"-"`
	Metadata map[string]string `json:"-"`
}
