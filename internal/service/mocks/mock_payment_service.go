package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateIntent(ctx context.Context, actor model.Actor, req service.IntentRequest) (model.PaymentIntent, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(model.PaymentIntent), args.Error(1)
}

func (m *MockPaymentService) Record(ctx context.Context, actor model.Actor, req service.PaymentRequest) (*service.PaymentReceipt, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PaymentReceipt), args.Error(1)
}

func (m *MockPaymentService) History(ctx context.Context, actor model.Actor, email string) ([]model.Payment, error) {
	args := m.Called(ctx, actor, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}
