package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"zoomboom/internal/model"
)

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Image, error) {
	args := m.Called(ctx, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}
