package testutil

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"pipe-sizing-service/internal/core/domain"
	ports "pipe-sizing-service/internal/core/ports/output"
)

// MockFieldRenderer is a mock of FieldRenderer. When the expectation returns
// a []byte as its first value, those bytes are written to w.
type MockFieldRenderer struct {
	mock.Mock
}

func (m *MockFieldRenderer) RenderPNG(ctx context.Context, field *domain.DiameterField, opts ports.RenderOptions, w io.Writer) error {
	args := m.Called(ctx, field, opts, w)
	if data, ok := args.Get(0).([]byte); ok {
		if _, err := w.Write(data); err != nil {
			return err
		}
		return args.Error(1)
	}
	return args.Error(0)
}

// MockFieldCache is a mock of FieldCache.
type MockFieldCache struct {
	mock.Mock
}

func (m *MockFieldCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFieldCache) Set(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *MockFieldCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
