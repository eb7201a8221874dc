package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/auth"
)

type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) Verify(ctx context.Context, idToken string) (auth.Identity, error) {
	args := m.Called(ctx, idToken)
	return args.Get(0).(auth.Identity), args.Error(1)
}
