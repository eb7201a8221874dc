package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zoomboom/internal/auth"
	authMocks "zoomboom/internal/auth/mocks"
	"zoomboom/internal/http/middleware"
	"zoomboom/internal/model"
	repoMocks "zoomboom/internal/repository/mocks"
	"zoomboom/internal/service"
	serviceMocks "zoomboom/internal/service/mocks"
)

func TestIssueToken(t *testing.T) {
	mockSvc := new(serviceMocks.MockSessionService)
	app := newTestApp()
	app.Post("/jwt", IssueToken(mockSvc))

	t.Run("verified identity", func(t *testing.T) {
		expires := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
		req := service.LoginRequest{IDToken: "firebase.id.token"}
		mockSvc.On("Login", mock.Anything, req).
			Return(auth.Token{Value: "signed.jwt.value", ID: "jti-1", ExpiresAt: expires}, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/jwt", req))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "signed.jwt.value", body["token"])
		assert.Equal(t, "2025-03-02T10:00:00Z", body["expiresAt"])
		assert.NotContains(t, body, "ID")
		mockSvc.AssertExpectations(t)
	})

	t.Run("rejected identity", func(t *testing.T) {
		req := service.LoginRequest{IDToken: "forged"}
		mockSvc.On("Login", mock.Anything, req).
			Return(auth.Token{}, fmt.Errorf("%w: bad signature", service.ErrUnauthorized)).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/jwt", req))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

// A caller that only names an admin email gets no token and no admin routes.
func TestIssueToken_BareEmail(t *testing.T) {
	tokens, err := auth.NewTokens("s3cret", time.Hour)
	require.NoError(t, err)
	users := new(repoMocks.MockUserRepository)
	users.On("FindByEmail", mock.Anything, admin.Email).
		Return(&model.User{Email: admin.Email, Role: model.RoleAdmin}, nil).Maybe()
	ids := new(authMocks.MockIdentityVerifier)

	app := newTestApp()
	RegisterRoutes(app, Dependencies{
		Sessions: service.NewSessionService(tokens, auth.NopRevocationStore{}, users, ids),
		Riders:   new(serviceMocks.MockRiderService),
	})

	resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/jwt", map[string]string{"email": admin.Email}))

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
	ids.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/riders", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	claims := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: member.Email, ID: "jti-9"}}
	withClaims := func(c *fiber.Ctx) error {
		c.Locals(middleware.ClaimsLocalKey, claims)
		return c.Next()
	}

	t.Run("revokes the token", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSessionService)
		mockSvc.On("Logout", mock.Anything, claims).Return(nil).Once()

		app := newTestApp()
		app.Post("/logout", withClaims, Logout(mockSvc))
		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/logout", ""))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSessionService)
		mockSvc.On("Logout", mock.Anything, claims).Return(errors.New("redis down")).Once()

		app := newTestApp()
		app.Post("/logout", withClaims, Logout(mockSvc))
		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/logout", ""))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no claims", func(t *testing.T) {
		app := newTestApp()
		app.Post("/logout", Logout(new(serviceMocks.MockSessionService)))
		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/logout", ""))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
