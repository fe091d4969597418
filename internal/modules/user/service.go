package user

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

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return storage.All[*domain.User](ctx, s.store)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return storage.Get[*domain.User](ctx, s.store, id)
}

// Create stores a new user. The plain password is hashed and never stored.
func (s *Service) Create(ctx context.Context, body request.Object) (*domain.User, error) {
	var req CreateUserRequest
	if err := validator.Required(body, &req); err != nil {
		return nil, err
	}

	u := domain.NewUser()
	if err := domain.Apply(u, body); err != nil {
		return nil, err
	}
	if err := setPassword(u, body); err != nil {
		return nil, err
	}

	if err := s.store.New(ctx, u); err != nil {
		return nil, err
	}
	return u, s.store.Save(ctx)
}

// Update assigns every writable field except email. A supplied password is
// re-hashed.
func (s *Service) Update(ctx context.Context, u *domain.User, body request.Object) error {
	if err := domain.Apply(u, body, protected...); err != nil {
		return err
	}
	if body.Has(passwordKey) {
		if err := setPassword(u, body); err != nil {
			return err
		}
	}
	u.Touch()
	if err := s.store.New(ctx, u); err != nil {
		return err
	}
	return s.store.Save(ctx)
}

// Delete removes u together with the places and reviews it owns.
func (s *Service) Delete(ctx context.Context, u *domain.User) error {
	if err := s.store.Delete(ctx, u); err != nil {
		return err
	}
	return s.store.Save(ctx)
}

func setPassword(u *domain.User, body request.Object) error {
	password, err := domain.DecodeString(body, passwordKey)
	if err != nil {
		return err
	}
	return u.SetPassword(password)
}
