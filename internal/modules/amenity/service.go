package amenity

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/request"
	"hbnb/internal/pkg/validator"
	"hbnb/internal/storage"
)

type Service struct {
	store storage.Storage
}

func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]*domain.Amenity, error) {
	return storage.All[*domain.Amenity](ctx, s.store)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Amenity, error) {
	return storage.Get[*domain.Amenity](ctx, s.store, id)
}

func (s *Service) Create(ctx context.Context, body request.Object) (*domain.Amenity, error) {
	var req CreateAmenityRequest
	if err := validator.Required(body, &req); err != nil {
		return nil, err
	}

	a := domain.NewAmenity()
	if err := domain.Apply(a, body); err != nil {
		return nil, err
	}
	if err := s.store.New(ctx, a); err != nil {
		return nil, err
	}
	return a, s.store.Save(ctx)
}

func (s *Service) Update(ctx context.Context, a *domain.Amenity, body request.Object) error {
	if err := domain.Apply(a, body); err != nil {
		return err
	}
	a.Touch()
	if err := s.store.New(ctx, a); err != nil {
		return err
	}
	return s.store.Save(ctx)
}

// Delete removes a and unlinks it from every place.
func (s *Service) Delete(ctx context.Context, a *domain.Amenity) error {
	if err := s.store.Delete(ctx, a); err != nil {
		return err
	}
	return s.store.Save(ctx)
}
