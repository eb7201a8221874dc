package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"zoomboom/internal/auth"
	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

// RegisterRequest is the identity provider profile sent after sign-in.
// Email must be the one IDToken was issued for.
type RegisterRequest struct {
	IDToken  string `json:"idToken"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

// ProfileRequest carries the fields a user may edit. Nil means unchanged.
type ProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	PhotoURL *string `json:"photoURL" validate:"omitempty,url"`
}

// UserService defines account use cases.
type UserService interface {
	// Register upserts the account for req.Email.
	Register(ctx context.Context, req RegisterRequest) (*model.User, error)

	Get(ctx context.Context, actor model.Actor, email string) (*model.User, error)

	Role(ctx context.Context, actor model.Actor, email string) (model.Role, error)

	// UpdateProfile lets a user edit their own name and photo.
	UpdateProfile(ctx context.Context, actor model.Actor, email string, req ProfileRequest) (int64, error)
}

type userService struct {
	repo       repository.UserRepository
	identities auth.IdentityVerifier
	validate   StructValidator
	now        func() time.Time
}

func NewUserService(repo repository.UserRepository, identities auth.IdentityVerifier, v StructValidator) UserService {
	return &userService{
		repo:       repo,
		identities: identities,
		validate:   v,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	email, err := verifiedEmail(ctx, s.identities, req.IDToken)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(email, req.Email) {
		return nil, fmt.Errorf("%w: identity token is for another email", ErrForbidden)
	}

	now := s.now()
	u, err := s.repo.Upsert(ctx, &model.User{
		Email:       email,
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		Role:        model.RoleUser,
		CreatedAt:   now,
		LastLoginAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, actor model.Actor, email string) (*model.User, error) {
	if email == "" {
		return nil, ErrIDRequired
	}
	if !actor.CanAccess(email) {
		return nil, ErrForbidden
	}
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Role(ctx context.Context, actor model.Actor, email string) (model.Role, error) {
	u, err := s.Get(ctx, actor, email)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor model.Actor, email string, req ProfileRequest) (int64, error) {
	if actor.Email != email {
		return 0, ErrForbidden
	}
	if err := s.validate.Struct(req); err != nil {
		return 0, err
	}
	n, err := s.repo.UpdateProfile(ctx, email, repository.ProfileUpdate{Name: req.Name, PhotoURL: req.PhotoURL})
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return n, nil
}
