package place

import (
	"context"
	"errors"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/request"
	"hbnb/internal/pkg/validator"
	"hbnb/internal/search"
	"hbnb/internal/storage"
)

type Service struct {
	store  storage.Storage
	engine *search.Engine
}

func NewService(store storage.Storage, engine *search.Engine) *Service {
	return &Service{store: store, engine: engine}
}

func (s *Service) City(ctx context.Context, id string) (*domain.City, error) {
	return storage.Get[*domain.City](ctx, s.store, id)
}

func (s *Service) Amenity(ctx context.Context, id string) (*domain.Amenity, error) {
	return storage.Get[*domain.Amenity](ctx, s.store, id)
}

func (s *Service) ListByCity(ctx context.Context, city *domain.City) ([]*domain.Place, error) {
	return s.store.Places(ctx, city.ID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Place, error) {
	return storage.Get[*domain.Place](ctx, s.store, id)
}

// Create stores a place in city owned by the user named in the body.
func (s *Service) Create(ctx context.Context, city *domain.City, body request.Object) (*domain.Place, error) {
	var req CreatePlaceRequest
	if err := validator.Required(body, &req); err != nil {
		return nil, err
	}

	p := domain.NewPlace()
	if err := domain.Apply(p, body, "city_id"); err != nil {
		return nil, err
	}
	p.CityID = city.ID

	if _, err := storage.Get[*domain.User](ctx, s.store, p.UserID); err != nil {
		return nil, err
	}

	if err := s.store.New(ctx, p); err != nil {
		return nil, err
	}
	return p, s.store.Save(ctx)
}

func (s *Service) Update(ctx context.Context, p *domain.Place, body request.Object) error {
	if err := domain.Apply(p, body, protected...); err != nil {
		return err
	}
	p.Touch()
	if err := s.store.New(ctx, p); err != nil {
		return err
	}
	return s.store.Save(ctx)
}

// Delete removes p with its reviews and amenity links.
func (s *Service) Delete(ctx context.Context, p *domain.Place) error {
	if err := s.store.Delete(ctx, p); err != nil {
		return err
	}
	return s.store.Save(ctx)
}

func (s *Service) Search(ctx context.Context, body request.Object) ([]*domain.Place, error) {
	f, err := parseFilter(body)
	if err != nil {
		return nil, err
	}
	return s.engine.Places(ctx, f)
}

func (s *Service) Amenities(ctx context.Context, p *domain.Place) ([]*domain.Amenity, error) {
	return s.store.Amenities(ctx, p.ID)
}

// LinkAmenity attaches a to p. It reports ErrAlreadyLinked when nothing
// changed.
func (s *Service) LinkAmenity(ctx context.Context, p *domain.Place, a *domain.Amenity) error {
	err := s.store.LinkAmenity(ctx, p.ID, a.ID)
	if errors.Is(err, storage.ErrAlreadyLinked) {
		return ErrAlreadyLinked
	}
	if err != nil {
		return err
	}
	return s.store.Save(ctx)
}

// UnlinkAmenity detaches a from p, failing with storage.ErrNotFound when
// they were not linked.
func (s *Service) UnlinkAmenity(ctx context.Context, p *domain.Place, a *domain.Amenity) error {
	if err := s.store.UnlinkAmenity(ctx, p.ID, a.ID); err != nil {
		return err
	}
	return s.store.Save(ctx)
}
