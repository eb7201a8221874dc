package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req service.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, actor model.Actor, email string) (*model.User, error) {
	args := m.Called(ctx, actor, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Role(ctx context.Context, actor model.Actor, email string) (model.Role, error) {
	args := m.Called(ctx, actor, email)
	return args.Get(0).(model.Role), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, actor model.Actor, email string, req service.ProfileRequest) (int64, error) {
	args := m.Called(ctx, actor, email, req)
	return args.Get(0).(int64), args.Error(1)
}
