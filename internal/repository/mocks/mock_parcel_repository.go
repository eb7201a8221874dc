package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Create(ctx context.Context, p *model.Parcel) (*model.Parcel, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Parcel), args.Error(1)
}

func (m *MockParcelRepository) FindByID(ctx context.Context, id string) (*model.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Parcel), args.Error(1)
}

func (m *MockParcelRepository) List(ctx context.Context, f repository.ParcelFilter) ([]model.Parcel, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Parcel), args.Error(1)
}

func (m *MockParcelRepository) UpdatePending(ctx context.Context, id string, d model.ParcelDraft, totalCost int, at time.Time) (int64, error) {
	args := m.Called(ctx, id, d, totalCost, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) DeletePending(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
