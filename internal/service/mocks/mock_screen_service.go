package mocks

import (
	"context"

	"signage/internal/model"
	"signage/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockScreenService struct {
	mock.Mock
}

func (m *MockScreenService) GetOrRegister(ctx context.Context, screenID string) (*model.Screen, bool, error) {
	args := m.Called(ctx, screenID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Screen), args.Bool(1), args.Error(2)
}

func (m *MockScreenService) Assign(ctx context.Context, screenID string, contentID *string) (*model.Screen, error) {
	args := m.Called(ctx, screenID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screen), args.Error(1)
}

func (m *MockScreenService) Unassign(ctx context.Context, screenID string) (*model.Screen, error) {
	args := m.Called(ctx, screenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screen), args.Error(1)
}

func (m *MockScreenService) Delete(ctx context.Context, screenID string) error {
	args := m.Called(ctx, screenID)
	return args.Error(0)
}

func (m *MockScreenService) CountAssignedTo(ctx context.Context, contentID string) (int, error) {
	args := m.Called(ctx, contentID)
	return args.Int(0), args.Error(1)
}

func (m *MockScreenService) List(ctx context.Context) ([]model.Screen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Screen), args.Error(1)
}

func (m *MockScreenService) ListResolved(ctx context.Context) ([]model.ResolvedScreen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResolvedScreen), args.Error(1)
}

func (m *MockScreenService) Poll(ctx context.Context, screenID string) (*service.PollResult, error) {
	args := m.Called(ctx, screenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PollResult), args.Error(1)
}
