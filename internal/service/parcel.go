package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"zoomboom/internal/coverage"
	"zoomboom/internal/model"
	"zoomboom/internal/pricing"
	"zoomboom/internal/repository"
)

// ParcelService defines the booking use cases.
type ParcelService interface {
	// Quote prices a possibly incomplete draft. It never fails.
	Quote(d model.ParcelDraft) pricing.Quote

	// Book validates and prices d and stores it as a Pending parcel owned by actor.
	Book(ctx context.Context, actor model.Actor, d model.ParcelDraft) (*model.Parcel, error)

	// List returns parcels newest first, scoped to what actor may see.
	List(ctx context.Context, actor model.Actor, email string) ([]model.Parcel, error)

	Get(ctx context.Context, actor model.Actor, id string) (*model.Parcel, error)

	// Update merges p into a Pending parcel and reprices it.
	Update(ctx context.Context, actor model.Actor, id string, p model.ParcelPatch) (int64, error)

	// Cancel deletes a Pending parcel.
	Cancel(ctx context.Context, actor model.Actor, id string) (int64, error)
}

type parcelService struct {
	repo       repository.ParcelRepository
	coverage   *coverage.Directory
	validate   StructValidator
	now        func() time.Time
	newID      func() string
	trackingID func(time.Time) (string, error)
}

func NewParcelService(repo repository.ParcelRepository, cov *coverage.Directory, v StructValidator) ParcelService {
	return &parcelService{
		repo:       repo,
		coverage:   cov,
		validate:   v,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
		trackingID: newTrackingID,
	}
}

// newTrackingID returns PRCL-<unix ms>-<3 digits>.
func newTrackingID(at time.Time) (string, error) {
	digits, err := gonanoid.Generate("0123456789", 3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PRCL-%d-%s", at.UnixMilli(), digits), nil
}

func (s *parcelService) Quote(d model.ParcelDraft) pricing.Quote {
	return pricing.Calculate(pricing.FromDraft(d))
}

// check applies every booking rule to d and returns its price.
func (s *parcelService) check(d model.ParcelDraft) (pricing.Quote, error) {
	if err := s.validate.Struct(d); err != nil {
		return pricing.Quote{}, err
	}
	if d.SameArea() {
		return pricing.Quote{}, ErrSameArea
	}
	if !s.coverage.Covers(d.SenderDistrict, d.SenderArea) {
		return pricing.Quote{}, fmt.Errorf("%w: %s in %s", ErrAreaNotCovered, d.SenderArea, d.SenderDistrict)
	}
	if !s.coverage.Covers(d.ReceiverDistrict, d.ReceiverArea) {
		return pricing.Quote{}, fmt.Errorf("%w: %s in %s", ErrAreaNotCovered, d.ReceiverArea, d.ReceiverDistrict)
	}
	q := s.Quote(d)
	if !q.Computable {
		return pricing.Quote{}, ErrFeeNotComputable
	}
	return q, nil
}

func (s *parcelService) Book(ctx context.Context, actor model.Actor, d model.ParcelDraft) (*model.Parcel, error) {
	q, err := s.check(d)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tracking, err := s.trackingID(now)
	if err != nil {
		return nil, fmt.Errorf("generate tracking id: %w", err)
	}

	p := &model.Parcel{
		ParcelDraft: d,
		ID:          s.newID(),
		TrackingID:  tracking,
		UserEmail:   actor.Email,
		TotalCost:   q.Fee,
		Status:      model.ParcelStatusPending,
		BookedAt:    now,
		UpdatedAt:   now,
	}
	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("save parcel: %w", err)
	}
	return stored, nil
}

func (s *parcelService) List(ctx context.Context, actor model.Actor, email string) ([]model.Parcel, error) {
	scope, err := scopeEmail(actor, email)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, repository.ParcelFilter{Email: scope})
}

func (s *parcelService) Get(ctx context.Context, actor model.Actor, id string) (*model.Parcel, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(p.UserEmail) {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *parcelService) Update(ctx context.Context, actor model.Actor, id string, patch model.ParcelPatch) (int64, error) {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return 0, err
	}
	if p.Status != model.ParcelStatusPending {
		return 0, ErrParcelNotPending
	}

	merged := patch.Apply(p.ParcelDraft)
	q, err := s.check(merged)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.UpdatePending(ctx, p.ID, merged, q.Fee, s.now())
	if err != nil {
		return 0, fmt.Errorf("update parcel: %w", err)
	}
	if n == 0 {
		return 0, ErrParcelNotPending
	}
	return n, nil
}

func (s *parcelService) Cancel(ctx context.Context, actor model.Actor, id string) (int64, error) {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return 0, err
	}
	if p.Status != model.ParcelStatusPending {
		return 0, ErrParcelNotPending
	}

	n, err := s.repo.DeletePending(ctx, p.ID)
	if err != nil {
		return 0, fmt.Errorf("delete parcel: %w", err)
	}
	if n == 0 {
		return 0, ErrParcelNotPending
	}
	return n, nil
}
