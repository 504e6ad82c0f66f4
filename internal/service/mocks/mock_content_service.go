package mocks

import (
	"context"
	"io"

	"signage/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.ContentItem, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentItem), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context) ([]model.ContentItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentItem), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, id string) (*model.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentItem), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
