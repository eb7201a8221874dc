package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"zoomboom/internal/model"
	"zoomboom/internal/payment"
	"zoomboom/internal/repository"
)

// IntentRequest asks for a payment intent. ParcelID is optional.
type IntentRequest struct {
	Price    int    `json:"price" validate:"gt=0"`
	ParcelID string `json:"parcelId"`
}

// PaymentRequest records a confirmed payment for a parcel.
type PaymentRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Price         int    `json:"price" validate:"gt=0"`
	ParcelID      string `json:"parcelId" validate:"required"`
}

// PaymentReceipt reports what recording a payment wrote.
type PaymentReceipt struct {
	PaymentID       string
	ParcelsModified int64
}

// PaymentService defines the checkout use cases.
type PaymentService interface {
	// CreateIntent opens a gateway intent for price Taka.
	CreateIntent(ctx context.Context, actor model.Actor, req IntentRequest) (model.PaymentIntent, error)

	// Record stores a payment and marks its parcel Paid.
	Record(ctx context.Context, actor model.Actor, req PaymentRequest) (*PaymentReceipt, error)

	// History returns payments newest first, scoped to what actor may see.
	History(ctx context.Context, actor model.Actor, email string) ([]model.Payment, error)
}

type paymentService struct {
	repo          repository.PaymentRepository
	parcels       repository.ParcelRepository
	gateway       payment.Gateway
	validate      StructValidator
	currency      string
	verifyIntents bool
	now           func() time.Time
	newID         func() string
}

// PaymentOptions configures NewPaymentService.
type PaymentOptions struct {
	Currency      string
	VerifyIntents bool
}

func NewPaymentService(
	repo repository.PaymentRepository,
	parcels repository.ParcelRepository,
	gateway payment.Gateway,
	v StructValidator,
	opt PaymentOptions,
) PaymentService {
	return &paymentService{
		repo:          repo,
		parcels:       parcels,
		gateway:       gateway,
		validate:      v,
		currency:      opt.Currency,
		verifyIntents: opt.VerifyIntents,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         uuid.NewString,
	}
}

// payableParcel loads a parcel actor may pay for and checks price against it.
func (s *paymentService) payableParcel(ctx context.Context, actor model.Actor, id string, price int) (*model.Parcel, error) {
	p, err := s.parcels.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(p.UserEmail) {
		return nil, ErrForbidden
	}
	if p.Status != model.ParcelStatusPending {
		return nil, ErrParcelNotPending
	}
	if p.TotalCost != price {
		return nil, fmt.Errorf("%w: expected %d", ErrPriceMismatch, p.TotalCost)
	}
	return p, nil
}

func (s *paymentService) CreateIntent(ctx context.Context, actor model.Actor, req IntentRequest) (model.PaymentIntent, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.PaymentIntent{}, err
	}

	meta := map[string]string{"email": actor.Email}
	if req.ParcelID != "" {
		p, err := s.payableParcel(ctx, actor, req.ParcelID, req.Price)
		if err != nil {
			return model.PaymentIntent{}, err
		}
		meta["parcelId"] = p.ID
		meta["trackingId"] = p.TrackingID
	}

	// The gateway charges in poisha.
	intent, err := s.gateway.CreateIntent(ctx, int64(req.Price)*100, s.currency, meta)
	if err != nil {
		return model.PaymentIntent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return intent, nil
}

func (s *paymentService) Record(ctx context.Context, actor model.Actor, req PaymentRequest) (*PaymentReceipt, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.payableParcel(ctx, actor, req.ParcelID, req.Price); err != nil {
		return nil, err
	}

	if s.verifyIntents {
		if err := s.verifyIntent(ctx, req); err != nil {
			return nil, err
		}
	}

	pay := &model.Payment{
		ID:            s.newID(),
		Email:         actor.Email,
		TransactionID: req.TransactionID,
		Price:         req.Price,
		ParcelID:      req.ParcelID,
		Status:        model.PaymentStatusPaid,
		Date:          s.now(),
	}
	n, err := s.repo.CreateForParcel(ctx, pay)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStale):
			return nil, ErrParcelNotPending
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrPaymentExists
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("save payment: %w", err)
	}
	return &PaymentReceipt{PaymentID: pay.ID, ParcelsModified: n}, nil
}

// verifyIntent checks that the intent settled for exactly this parcel and price.
func (s *paymentService) verifyIntent(ctx context.Context, req PaymentRequest) error {
	intent, err := s.gateway.Intent(ctx, req.TransactionID)
	if err != nil {
		if errors.Is(err, payment.ErrIntentNotFound) {
			return ErrPaymentNotSucceeded
		}
		return fmt.Errorf("verify payment intent: %w", err)
	}
	if intent.Status != model.IntentStatusSucceeded {
		return fmt.Errorf("%w: intent is %s", ErrPaymentNotSucceeded, intent.Status)
	}

	switch {
	case intent.Amount != int64(req.Price)*100:
		return fmt.Errorf("%w: charged %d for price %d", ErrIntentMismatch, intent.Amount, req.Price)
	case !strings.EqualFold(intent.Currency, s.currency):
		return fmt.Errorf("%w: currency %s", ErrIntentMismatch, intent.Currency)
	case intent.Metadata["parcelId"] != req.ParcelID:
		return fmt.Errorf("%w: intent is for parcel %q", ErrIntentMismatch, intent.Metadata["parcelId"])
	}
	return nil
}

func (s *paymentService) History(ctx context.Context, actor model.Actor, email string) ([]model.Payment, error) {
	scope, err := scopeEmail(actor, email)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, repository.PaymentFilter{Email: scope})
}
