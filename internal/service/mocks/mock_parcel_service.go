package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
	"zoomboom/internal/pricing"
)

type MockParcelService struct {
	mock.Mock
}

func (m *MockParcelService) Quote(d model.ParcelDraft) pricing.Quote {
	args := m.Called(d)
	return args.Get(0).(pricing.Quote)
}

func (m *MockParcelService) Book(ctx context.Context, actor model.Actor, d model.ParcelDraft) (*model.Parcel, error) {
	args := m.Called(ctx, actor, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Parcel), args.Error(1)
}

func (m *MockParcelService) List(ctx context.Context, actor model.Actor, email string) ([]model.Parcel, error) {
	args := m.Called(ctx, actor, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Parcel), args.Error(1)
}

func (m *MockParcelService) Get(ctx context.Context, actor model.Actor, id string) (*model.Parcel, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Parcel), args.Error(1)
}

func (m *MockParcelService) Update(ctx context.Context, actor model.Actor, id string, p model.ParcelPatch) (int64, error) {
	args := m.Called(ctx, actor, id, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelService) Cancel(ctx context.Context, actor model.Actor, id string) (int64, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(int64), args.Error(1)
}
