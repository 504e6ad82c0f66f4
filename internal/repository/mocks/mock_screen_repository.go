package mocks

import (
	"context"

	"signage/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockScreenRepository struct {
	mock.Mock
}

func (m *MockScreenRepository) Find(ctx context.Context, id string) (*model.Screen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screen), args.Error(1)
}

func (m *MockScreenRepository) Upsert(ctx context.Context, screen *model.Screen) (*model.Screen, error) {
	args := m.Called(ctx, screen)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screen), args.Error(1)
}

func (m *MockScreenRepository) CreateIfAbsent(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockScreenRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScreenRepository) CountAssignedTo(ctx context.Context, contentID string) (int, error) {
	args := m.Called(ctx, contentID)
	return args.Int(0), args.Error(1)
}

func (m *MockScreenRepository) List(ctx context.Context) ([]model.Screen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Screen), args.Error(1)
}
