package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

type MockRiderRepository struct {
	mock.Mock
}

func (m *MockRiderRepository) Create(ctx context.Context, r *model.Rider) (*model.Rider, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rider), args.Error(1)
}

func (m *MockRiderRepository) FindByID(ctx context.Context, id string) (*model.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rider), args.Error(1)
}

func (m *MockRiderRepository) List(ctx context.Context, f repository.RiderFilter) ([]model.Rider, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rider), args.Error(1)
}

func (m *MockRiderRepository) ChangeStatus(ctx context.Context, id string, c repository.StatusChange) (int64, error) {
	args := m.Called(ctx, id, c)
	return args.Get(0).(int64), args.Error(1)
}
