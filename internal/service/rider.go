package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"zoomboom/internal/coverage"
	"zoomboom/internal/model"
	"zoomboom/internal/repository"
	"zoomboom/internal/validation"
)

// RiderQuery filters the admin rider listing.
type RiderQuery struct {
	Status model.RiderStatus
	Search string
}

// RiderService defines rider onboarding and review.
type RiderService interface {
	// Apply stores actor's application as pending.
	Apply(ctx context.Context, actor model.Actor, app model.RiderApplication) (*model.Rider, error)

	List(ctx context.Context, q RiderQuery) ([]model.Rider, error)

	Get(ctx context.Context, id string) (*model.Rider, error)

	// ChangeStatus moves an application to status and adjusts the applicant's role.
	ChangeStatus(ctx context.Context, id string, status model.RiderStatus) (int64, error)
}

type transition struct {
	from, to model.RiderStatus
}

// riderTransitions lists the allowed moves and the role each one grants.
// An empty role leaves the user's role as it is.
var riderTransitions = map[transition]model.Role{
	{model.RiderStatusPending, model.RiderStatusVerified}:     model.RoleRider,
	{model.RiderStatusPending, model.RiderStatusRejected}:     "",
	{model.RiderStatusVerified, model.RiderStatusDeactivated}: model.RoleUser,
	{model.RiderStatusDeactivated, model.RiderStatusVerified}: model.RoleRider,
}

type riderService struct {
	repo     repository.RiderRepository
	coverage *coverage.Directory
	validate StructValidator
	now      func() time.Time
	newID    func() string
}

func NewRiderService(repo repository.RiderRepository, cov *coverage.Directory, v StructValidator) RiderService {
	return &riderService{
		repo:     repo,
		coverage: cov,
		validate: v,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (s *riderService) Apply(ctx context.Context, actor model.Actor, app model.RiderApplication) (*model.Rider, error) {
	if err := s.validate.Struct(app); err != nil {
		return nil, err
	}
	if app.Email != actor.Email {
		return nil, validation.Fail("email", "must match the signed-in account")
	}
	if !s.coverage.InRegion(app.Region, app.District) {
		return nil, validation.Fail("district", fmt.Sprintf("is not in region %s", app.Region))
	}

	now := s.now()
	r := &model.Rider{
		RiderApplication: app,
		ID:               s.newID(),
		Status:           model.RiderStatusPending,
		Role:             model.RoleUser,
		AppliedAt:        now,
		UpdatedAt:        now,
	}
	stored, err := s.repo.Create(ctx, r)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrApplicationExists
		}
		return nil, fmt.Errorf("save rider: %w", err)
	}
	return stored, nil
}

func (s *riderService) List(ctx context.Context, q RiderQuery) ([]model.Rider, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, validation.Fail("status", "must be one of: pending verified rejected deactivated")
	}
	return s.repo.List(ctx, repository.RiderFilter{Status: q.Status, Search: q.Search})
}

func (s *riderService) Get(ctx context.Context, id string) (*model.Rider, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *riderService) ChangeStatus(ctx context.Context, id string, status model.RiderStatus) (int64, error) {
	if !status.Valid() {
		return 0, validation.Fail("status", "must be one of: pending verified rejected deactivated")
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	role, ok := riderTransitions[transition{r.Status, status}]
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, r.Status, status)
	}
	change := repository.StatusChange{From: r.Status, To: status, At: s.now()}
	if role != "" {
		change.Role = &role
	}

	n, err := s.repo.ChangeStatus(ctx, r.ID, change)
	if err != nil {
		return 0, fmt.Errorf("change rider status: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
	}
	return n, nil
}
