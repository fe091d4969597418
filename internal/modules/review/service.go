package review

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

func (s *Service) Place(ctx context.Context, id string) (*domain.Place, error) {
	return storage.Get[*domain.Place](ctx, s.store, id)
}

func (s *Service) ListByPlace(ctx context.Context, p *domain.Place) ([]*domain.Review, error) {
	return s.store.Reviews(ctx, p.ID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Review, error) {
	return storage.Get[*domain.Review](ctx, s.store, id)
}

// Create stores a review of p written by the user named in the body.
func (s *Service) Create(ctx context.Context, p *domain.Place, body request.Object) (*domain.Review, error) {
	var req CreateReviewRequest
	if err := validator.Required(body, &req); err != nil {
		return nil, err
	}

	rv := domain.NewReview()
	if err := domain.Apply(rv, body, "place_id"); err != nil {
		return nil, err
	}
	rv.PlaceID = p.ID

	if _, err := storage.Get[*domain.User](ctx, s.store, rv.UserID); err != nil {
		return nil, err
	}

	if err := s.store.New(ctx, rv); err != nil {
		return nil, err
	}
	return rv, s.store.Save(ctx)
}

func (s *Service) Update(ctx context.Context, rv *domain.Review, body request.Object) error {
	if err := domain.Apply(rv, body, protected...); err != nil {
		return err
	}
	rv.Touch()
	if err := s.store.New(ctx, rv); err != nil {
		return err
	}
	return s.store.Save(ctx)
}

func (s *Service) Delete(ctx context.Context, rv *domain.Review) error {
	if err := s.store.Delete(ctx, rv); err != nil {
		return err
	}
	return s.store.Save(ctx)
}
