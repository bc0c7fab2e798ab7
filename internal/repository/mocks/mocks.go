package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Backend is a mock for repository.Backend.
type Backend struct {
	mock.Mock
}

func (m *Backend) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Backend) Save(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
