package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (model.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, metadata)
	return args.Get(0).(model.PaymentIntent), args.Error(1)
}

func (m *MockGateway) Intent(ctx context.Context, id string) (model.PaymentIntent, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.PaymentIntent), args.Error(1)
}
