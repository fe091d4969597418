// Package storagemock provides a testify mock of storage.Storage for service
// tests.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hbnb/internal/domain"
	"hbnb/internal/storage"
)

var _ storage.Storage = (*Storage)(nil)

type Storage struct {
	mock.Mock
}

func (m *Storage) Get(ctx context.Context, kind domain.Kind, id string) (domain.Entity, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Entity), args.Error(1)
}

func (m *Storage) All(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}

func (m *Storage) New(ctx context.Context, e domain.Entity) error {
	return m.Called(ctx, e).Error(0)
}

func (m *Storage) Delete(ctx context.Context, e domain.Entity) error {
	return m.Called(ctx, e).Error(0)
}

func (m *Storage) Save(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Storage) Count(ctx context.Context, kind domain.Kind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Storage) Cities(ctx context.Context, stateID string) ([]*domain.City, error) {
	args := m.Called(ctx, stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

func (m *Storage) Places(ctx context.Context, cityID string) ([]*domain.Place, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *Storage) Reviews(ctx context.Context, placeID string) ([]*domain.Review, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *Storage) Amenities(ctx context.Context, placeID string) ([]*domain.Amenity, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Amenity), args.Error(1)
}

func (m *Storage) LinkAmenity(ctx context.Context, placeID, amenityID string) error {
	return m.Called(ctx, placeID, amenityID).Error(0)
}

func (m *Storage) UnlinkAmenity(ctx context.Context, placeID, amenityID string) error {
	return m.Called(ctx, placeID, amenityID).Error(0)
}

func (m *Storage) Close() error {
	return m.Called().Error(0)
}
