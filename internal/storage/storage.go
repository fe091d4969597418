// Package storage is the persistence gateway for catalog entities. Two
// interchangeable backends implement Storage: FileStorage keeps objects in
// memory and serializes them to a JSON file on Save, DBStorage keeps them in
// a relational database through gorm.
package storage

import (
	"context"
	"errors"
	"fmt"

	"hbnb/internal/domain"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyLinked = errors.New("already linked")
)

// Storage is keyed by (kind, id). Returned entities are detached copies:
// mutations are only persisted by passing them back to New.
type Storage interface {
	Get(ctx context.Context, kind domain.Kind, id string) (domain.Entity, error)
	All(ctx context.Context, kind domain.Kind) ([]domain.Entity, error)
	// New inserts e, replacing any stored entity with the same id.
	New(ctx context.Context, e domain.Entity) error
	// Delete removes e together with the entities that reference it.
	Delete(ctx context.Context, e domain.Entity) error
	Save(ctx context.Context) error
	Count(ctx context.Context, kind domain.Kind) (int64, error)

	Cities(ctx context.Context, stateID string) ([]*domain.City, error)
	Places(ctx context.Context, cityID string) ([]*domain.Place, error)
	Reviews(ctx context.Context, placeID string) ([]*domain.Review, error)
	Amenities(ctx context.Context, placeID string) ([]*domain.Amenity, error)
	LinkAmenity(ctx context.Context, placeID, amenityID string) error
	UnlinkAmenity(ctx context.Context, placeID, amenityID string) error

	Close() error
}

// Get fetches the entity of type T with the given id.
func Get[T domain.Entity](ctx context.Context, s Storage, id string) (T, error) {
	var zero T
	e, err := s.Get(ctx, zero.Kind(), id)
	if err != nil {
		return zero, err
	}
	t, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("storage: %s %s has type %T", zero.Kind(), id, e)
	}
	return t, nil
}

// All lists every stored entity of type T.
func All[T domain.Entity](ctx context.Context, s Storage) ([]T, error) {
	var zero T
	items, err := s.All(ctx, zero.Kind())
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, e := range items {
		t, ok := e.(T)
		if !ok {
			return nil, fmt.Errorf("storage: %s %s has type %T", zero.Kind(), e.Meta().ID, e)
		}
		out = append(out, t)
	}
	return out, nil
}
