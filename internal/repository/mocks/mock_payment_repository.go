package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreateForParcel(ctx context.Context, p *model.Payment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, f repository.PaymentFilter) ([]model.Payment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}
