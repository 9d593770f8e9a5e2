package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/depot-route-service/internal/domain"
)

type MockDirectionsRepository struct {
	mock.Mock
}

func (m *MockDirectionsRepository) Driving(ctx context.Context, from, to domain.Point) (*domain.DrivingLeg, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrivingLeg), args.Error(1)
}

type MockWorkbookParser struct {
	mock.Mock
}

func (m *MockWorkbookParser) ParseLocations(r io.Reader) ([]domain.Point, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Point), args.Error(1)
}
