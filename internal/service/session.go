package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"zoomboom/internal/auth"
	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

// LoginRequest exchanges the identity provider's ID token for an access token.
type LoginRequest struct {
	IDToken string `json:"idToken"`
}

// SessionService issues, checks and revokes access tokens.
type SessionService interface {
	Login(ctx context.Context, req LoginRequest) (auth.Token, error)

	// Authenticate resolves a raw bearer token to its caller. The role is read
	// from the account on every call. Failures wrap ErrUnauthorized.
	Authenticate(ctx context.Context, raw string) (model.Actor, *auth.Claims, error)

	// Logout revokes the token described by claims until it expires.
	Logout(ctx context.Context, claims *auth.Claims) error
}

type sessionService struct {
	tokens     *auth.Tokens
	revoked    auth.RevocationStore
	users      repository.UserRepository
	identities auth.IdentityVerifier
}

func NewSessionService(tokens *auth.Tokens, revoked auth.RevocationStore, users repository.UserRepository, identities auth.IdentityVerifier) SessionService {
	return &sessionService{tokens: tokens, revoked: revoked, users: users, identities: identities}
}

// Login issues a token for the email the identity provider verified, never
// for an email the caller merely names.
func (s *sessionService) Login(ctx context.Context, req LoginRequest) (auth.Token, error) {
	email, err := verifiedEmail(ctx, s.identities, req.IDToken)
	if err != nil {
		return auth.Token{}, err
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Token{}, fmt.Errorf("%w: %s is not registered", ErrUnauthorized, email)
		}
		return auth.Token{}, err
	}
	return s.tokens.Issue(u.Email)
}

// verifiedEmail resolves raw to the email the identity provider signed for.
// A missing or rejected token wraps ErrUnauthorized.
func verifiedEmail(ctx context.Context, v auth.IdentityVerifier, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: identity token is required", ErrUnauthorized)
	}
	id, err := v.Verify(ctx, raw)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidIdentity) {
			return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return "", fmt.Errorf("verify identity: %w", err)
	}
	return id.Email, nil
}

func (s *sessionService) Authenticate(ctx context.Context, raw string) (model.Actor, *auth.Claims, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return model.Actor{}, nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return model.Actor{}, nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return model.Actor{}, nil, fmt.Errorf("%w: token revoked", ErrUnauthorized)
	}

	u, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Actor{}, nil, fmt.Errorf("%w: unknown user", ErrUnauthorized)
		}
		return model.Actor{}, nil, err
	}
	return model.Actor{Email: u.Email, Role: u.Role}, claims, nil
}

func (s *sessionService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.revoked.Revoke(ctx, claims.ID, s.tokens.Remaining(claims)); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
