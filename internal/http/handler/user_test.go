package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zoomboom/internal/model"
	"zoomboom/internal/service"
	serviceMocks "zoomboom/internal/service/mocks"
)

func TestRegisterUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := newTestApp()
	app.Put("/users", RegisterUser(mockSvc))

	req := service.RegisterRequest{IDToken: "firebase.id.token", Email: member.Email, Name: "Rahim", PhotoURL: "https://example.com/p.png"}
	mockSvc.On("Register", mock.Anything, req).
		Return(&model.User{Email: member.Email, Name: "Rahim", Role: model.RoleRider}, nil).Once()

	resp, _ := app.Test(jsonRequest(t, http.MethodPut, "/users", req))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var u model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&u))
	assert.Equal(t, model.RoleRider, u.Role)
	mockSvc.AssertExpectations(t)
}

func TestGetUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := newTestApp()
	app.Get("/users/:email", asActor(member), GetUser(mockSvc))

	t.Run("self", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, member, member.Email).Return(&model.User{Email: member.Email}, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/users/"+member.Email, ""))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("someone else", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, member, "karim@example.com").Return(nil, service.ErrForbidden).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/users/karim@example.com", ""))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetUserRole(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := newTestApp()
	app.Get("/users/:email/role", asActor(admin), GetUserRole(mockSvc))

	mockSvc.On("Role", mock.Anything, admin, member.Email).Return(model.RoleUser, nil).Once()

	resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/users/"+member.Email+"/role", ""))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body roleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, model.RoleUser, body.Role)
	mockSvc.AssertExpectations(t)
}

func TestUpdateProfile(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := newTestApp()
	app.Patch("/users/:email", asActor(member), UpdateProfile(mockSvc))

	mockSvc.On("UpdateProfile", mock.Anything, member, member.Email, mock.MatchedBy(func(r service.ProfileRequest) bool {
		return r.Name != nil && *r.Name == "Rahim Uddin" && r.PhotoURL == nil
	})).Return(int64(1), nil).Once()

	resp, _ := app.Test(jsonRequest(t, http.MethodPatch, "/users/"+member.Email, map[string]string{"name": "Rahim Uddin"}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var res modifiedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, int64(1), res.ModifiedCount)
	mockSvc.AssertExpectations(t)
}
