package mocks

import (
	"context"

	"signage/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, item *model.ContentItem) (*model.ContentItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentItem), args.Error(1)
}

func (m *MockContentRepository) FindByID(ctx context.Context, id string) (*model.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentItem), args.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context) ([]model.ContentItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentItem), args.Error(1)
}

func (m *MockContentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
