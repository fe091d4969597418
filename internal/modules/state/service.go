package state

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

func (s *Service) List(ctx context.Context) ([]*domain.State, error) {
	return storage.All[*domain.State](ctx, s.store)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.State, error) {
	return storage.Get[*domain.State](ctx, s.store, id)
}

func (s *Service) Create(ctx context.Context, body request.Object) (*domain.State, error) {
	var req CreateStateRequest
	if err := validator.Required(body, &req); err != nil {
		return nil, err
	}

	st := domain.NewState()
	if err := domain.Apply(st, body); err != nil {
		return nil, err
	}
	if err := s.store.New(ctx, st); err != nil {
		return nil, err
	}
	return st, s.store.Save(ctx)
}

func (s *Service) Update(ctx context.Context, st *domain.State, body request.Object) error {
	if err := domain.Apply(st, body); err != nil {
		return err
	}
	st.Touch()
	if err := s.store.New(ctx, st); err != nil {
		return err
	}
	return s.store.Save(ctx)
}

// Delete removes st and, through the store, its cities.
func (s *Service) Delete(ctx context.Context, st *domain.State) error {
	if err := s.store.Delete(ctx, st); err != nil {
		return err
	}
	return s.store.Save(ctx)
}
