package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yakoovad/mergington-activities/internal/repository"
)

type MockTransactor struct {
	mock.Mock
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Load(ctx context.Context, activities []*repository.Activity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context) ([]*repository.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Activity), args.Error(1)
}

func (m *MockActivityRepository) Get(ctx context.Context, name string) (*repository.Activity, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Activity), args.Error(1)
}

func (m *MockActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	args := m.Called(ctx, name, email)
	return args.Error(0)
}

func (m *MockActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	args := m.Called(ctx, name, email)
	return args.Error(0)
}
