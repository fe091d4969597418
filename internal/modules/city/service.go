package city

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

func (s *Service) State(ctx context.Context, id string) (*domain.State, error) {
	return storage.Get[*domain.State](ctx, s.store, id)
}

func (s *Service) ListByState(ctx context.Context, st *domain.State) ([]*domain.City, error) {
	return s.store.Cities(ctx, st.ID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.City, error) {
	return storage.Get[*domain.City](ctx, s.store, id)
}

// Create stores a city under st. A state_id in the body is ignored.
func (s *Service) Create(ctx context.Context, st *domain.State, body request.Object) (*domain.City, error) {
	var req CreateCityRequest
	if err := validator.Required(body, &req); err != nil {
		return nil, err
	}

	city := domain.NewCity()
	if err := domain.Apply(city, body, protected...); err != nil {
		return nil, err
	}
	city.StateID = st.ID

	if err := s.store.New(ctx, city); err != nil {
		return nil, err
	}
	return city, s.store.Save(ctx)
}

func (s *Service) Update(ctx context.Context, city *domain.City, body request.Object) error {
	if err := domain.Apply(city, body, protected...); err != nil {
		return err
	}
	city.Touch()
	if err := s.store.New(ctx, city); err != nil {
		return err
	}
	return s.store.Save(ctx)
}

func (s *Service) Delete(ctx context.Context, city *domain.City) error {
	if err := s.store.Delete(ctx, city); err != nil {
		return err
	}
	return s.store.Save(ctx)
}
