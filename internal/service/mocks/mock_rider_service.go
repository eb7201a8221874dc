package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

type MockRiderService struct {
	mock.Mock
}

func (m *MockRiderService) Apply(ctx context.Context, actor model.Actor, app model.RiderApplication) (*model.Rider, error) {
	args := m.Called(ctx, actor, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rider), args.Error(1)
}

func (m *MockRiderService) List(ctx context.Context, q service.RiderQuery) ([]model.Rider, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rider), args.Error(1)
}

func (m *MockRiderService) Get(ctx context.Context, id string) (*model.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rider), args.Error(1)
}

func (m *MockRiderService) ChangeStatus(ctx context.Context, id string, status model.RiderStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}
