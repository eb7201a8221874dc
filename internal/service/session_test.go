package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zoomboom/internal/auth"
	authMocks "zoomboom/internal/auth/mocks"
	"zoomboom/internal/model"
	repoMocks "zoomboom/internal/repository/mocks"
)

func newTestSessionService(t *testing.T, users *repoMocks.MockUserRepository, revoked auth.RevocationStore) (*sessionService, *auth.Tokens) {
	t.Helper()
	s, tokens, _ := newTestSessionServiceWithIdentities(t, users, revoked)
	return s, tokens
}

func newTestSessionServiceWithIdentities(t *testing.T, users *repoMocks.MockUserRepository, revoked auth.RevocationStore) (*sessionService, *auth.Tokens, *authMocks.MockIdentityVerifier) {
	t.Helper()
	tokens, err := auth.NewTokens("s3cret", time.Hour)
	require.NoError(t, err)
	ids := new(authMocks.MockIdentityVerifier)
	return NewSessionService(tokens, revoked, users, ids).(*sessionService), tokens, ids
}

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("verified identity", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByEmail", ctx, member.Email).Return(&model.User{Email: member.Email}, nil)
		s, tokens, ids := newTestSessionServiceWithIdentities(t, mUsers, auth.NopRevocationStore{})
		ids.On("Verify", ctx, "id-token").Return(auth.Identity{UID: "uid-1", Email: member.Email}, nil)

		tok, err := s.Login(ctx, LoginRequest{IDToken: "id-token"})

		require.NoError(t, err)
		claims, err := tokens.Parse(tok.Value)
		require.NoError(t, err)
		assert.Equal(t, member.Email, claims.Subject)
		mUsers.AssertExpectations(t)
		ids.AssertExpectations(t)
	})

	t.Run("bare email is not a credential", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		s, _, ids := newTestSessionServiceWithIdentities(t, mUsers, auth.NopRevocationStore{})

		_, err := s.Login(ctx, LoginRequest{})

		assert.ErrorIs(t, err, ErrUnauthorized)
		ids.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
		mUsers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	tests := []struct {
		name      string
		verifyErr error
		identity  auth.Identity
		findErr   error
		wantErr   error
	}{
		{name: "forged token", verifyErr: fmt.Errorf("%w: bad signature", auth.ErrInvalidIdentity), wantErr: ErrUnauthorized},
		{name: "not registered", identity: auth.Identity{Email: "ghost@example.com"}, findErr: sql.ErrNoRows, wantErr: ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(repoMocks.MockUserRepository)
			if tt.findErr != nil {
				mUsers.On("FindByEmail", ctx, tt.identity.Email).Return(nil, tt.findErr)
			}
			s, _, ids := newTestSessionServiceWithIdentities(t, mUsers, auth.NopRevocationStore{})
			ids.On("Verify", ctx, "id-token").Return(tt.identity, tt.verifyErr)

			_, err := s.Login(ctx, LoginRequest{IDToken: "id-token"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("provider down", func(t *testing.T) {
		s, _, ids := newTestSessionServiceWithIdentities(t, new(repoMocks.MockUserRepository), auth.NopRevocationStore{})
		ids.On("Verify", ctx, "id-token").Return(auth.Identity{}, fmt.Errorf("%w: timeout", auth.ErrIdentityUnavailable))

		_, err := s.Login(ctx, LoginRequest{IDToken: "id-token"})

		assert.ErrorIs(t, err, auth.ErrIdentityUnavailable)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}

func TestSessionService_AuthenticateAndLogout(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	mUsers := new(repoMocks.MockUserRepository)
	s, tokens := newTestSessionService(t, mUsers, auth.NewRedisRevocationStore(rdb))

	tok, err := tokens.Issue(member.Email)
	require.NoError(t, err)

	// Role comes from the account, so an approval is visible on the next request.
	mUsers.On("FindByEmail", ctx, member.Email).Return(&model.User{Email: member.Email, Role: model.RoleRider}, nil)

	actor, claims, err := s.Authenticate(ctx, tok.Value)
	require.NoError(t, err)
	assert.Equal(t, model.Actor{Email: member.Email, Role: model.RoleRider}, actor)

	require.NoError(t, s.Logout(ctx, claims))
	assert.True(t, mr.Exists("zoomboom:revoked:"+claims.ID))

	_, _, err = s.Authenticate(ctx, tok.Value)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "token revoked")
}

func TestSessionService_AuthenticateRejects(t *testing.T) {
	ctx := context.Background()

	t.Run("bad token", func(t *testing.T) {
		s, _ := newTestSessionService(t, new(repoMocks.MockUserRepository), auth.NopRevocationStore{})
		_, _, err := s.Authenticate(ctx, "garbage")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("account deleted", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		s, tokens := newTestSessionService(t, mUsers, auth.NopRevocationStore{})
		tok, err := tokens.Issue("gone@example.com")
		require.NoError(t, err)
		mUsers.On("FindByEmail", ctx, "gone@example.com").Return(nil, sql.ErrNoRows)

		_, _, err = s.Authenticate(ctx, tok.Value)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("revocation store down", func(t *testing.T) {
		s, tokens := newTestSessionService(t, new(repoMocks.MockUserRepository), failingRevocations{})
		tok, err := tokens.Issue(member.Email)
		require.NoError(t, err)

		_, _, err = s.Authenticate(ctx, tok.Value)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}

type failingRevocations struct{}

func (failingRevocations) Revoke(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}

func (failingRevocations) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}
