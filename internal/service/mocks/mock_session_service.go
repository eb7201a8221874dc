package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/auth"
	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, req service.LoginRequest) (auth.Token, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(auth.Token), args.Error(1)
}

func (m *MockSessionService) Authenticate(ctx context.Context, raw string) (model.Actor, *auth.Claims, error) {
	args := m.Called(ctx, raw)
	var claims *auth.Claims
	if c := args.Get(1); c != nil {
		claims = c.(*auth.Claims)
	}
	return args.Get(0).(model.Actor), claims, args.Error(2)
}

func (m *MockSessionService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}
