package storage

import (
	"context"
	stderrors "errors"
	"strings"

	"hbnb/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const placeAmenityTable = "place_amenity"

// DBStorage persists entities through gorm. Every call commits on its own,
// so Save has nothing left to flush.
type DBStorage struct {
	db *gorm.DB
}

func NewDBStorage(db *gorm.DB) *DBStorage {
	return &DBStorage{db: db}
}

func (s *DBStorage) Migrate(ctx context.Context) error {
	return errors.Wrap(s.db.WithContext(ctx).AutoMigrate(domain.Models()...), "auto-migrate")
}

// emptyModel returns a zero entity of kind. gorm turns a non-zero primary key
// on the destination into a WHERE clause, so fresh domain.New values must not
// be used as query targets.
func emptyModel(kind domain.Kind) (domain.Entity, error) {
	switch kind {
	case domain.KindState:
		return &domain.State{}, nil
	case domain.KindCity:
		return &domain.City{}, nil
	case domain.KindAmenity:
		return &domain.Amenity{}, nil
	case domain.KindUser:
		return &domain.User{}, nil
	case domain.KindPlace:
		return &domain.Place{}, nil
	case domain.KindReview:
		return &domain.Review{}, nil
	}
	return nil, errors.Errorf("unknown entity kind %q", kind)
}

func normalize(e domain.Entity) {
	m := e.Meta()
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
}

func (s *DBStorage) Get(ctx context.Context, kind domain.Kind, id string) (domain.Entity, error) {
	e, err := emptyModel(kind)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Where("id = ?", id).Take(e).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s %s", kind, id)
	}
	normalize(e)
	return e, nil
}

func (s *DBStorage) All(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	q := s.db.WithContext(ctx).Order("created_at, id")

	var (
		out []domain.Entity
		err error
	)
	switch kind {
	case domain.KindState:
		out, err = findAll[domain.State](q)
	case domain.KindCity:
		out, err = findAll[domain.City](q)
	case domain.KindAmenity:
		out, err = findAll[domain.Amenity](q)
	case domain.KindUser:
		out, err = findAll[domain.User](q)
	case domain.KindPlace:
		out, err = findAll[domain.Place](q)
	case domain.KindReview:
		out, err = findAll[domain.Review](q)
	default:
		return nil, errors.Errorf("unknown entity kind %q", kind)
	}
	return out, errors.Wrapf(err, "list %s", kind)
}

func findAll[T any, PT interface {
	*T
	domain.Entity
}](q *gorm.DB) ([]domain.Entity, error) {
	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Entity, 0, len(rows))
	for i := range rows {
		e := PT(&rows[i])
		normalize(e)
		out = append(out, e)
	}
	return out, nil
}

func (s *DBStorage) New(ctx context.Context, e domain.Entity) error {
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(e).Error
	return errors.Wrapf(err, "store %s %s", e.Kind(), e.Meta().ID)
}

func (s *DBStorage) Delete(ctx context.Context, e domain.Entity) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteCascade(tx, e.Kind(), []string{e.Meta().ID})
		if err != nil {
			return errors.Wrapf(err, "delete %s %s", e.Kind(), e.Meta().ID)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// deleteCascade removes ids of kind after their dependents and reports how
// many rows of kind went away.
func deleteCascade(tx *gorm.DB, kind domain.Kind, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	switch kind {
	case domain.KindState:
		var cityIDs []string
		if err := tx.Model(&domain.City{}).Where("state_id IN ?", ids).Pluck("id", &cityIDs).Error; err != nil {
			return 0, err
		}
		if _, err := deleteCascade(tx, domain.KindCity, cityIDs); err != nil {
			return 0, err
		}

	case domain.KindCity, domain.KindUser:
		column := "city_id"
		if kind == domain.KindUser {
			column = "user_id"
			if err := tx.Where("user_id IN ?", ids).Delete(&domain.Review{}).Error; err != nil {
				return 0, err
			}
		}
		var placeIDs []string
		if err := tx.Model(&domain.Place{}).Where(column+" IN ?", ids).Pluck("id", &placeIDs).Error; err != nil {
			return 0, err
		}
		if _, err := deleteCascade(tx, domain.KindPlace, placeIDs); err != nil {
			return 0, err
		}

	case domain.KindPlace:
		if err := tx.Where("place_id IN ?", ids).Delete(&domain.Review{}).Error; err != nil {
			return 0, err
		}
		if err := tx.Exec("DELETE FROM "+placeAmenityTable+" WHERE place_id IN ?", ids).Error; err != nil {
			return 0, err
		}

	case domain.KindAmenity:
		if err := tx.Exec("DELETE FROM "+placeAmenityTable+" WHERE amenity_id IN ?", ids).Error; err != nil {
			return 0, err
		}
	}

	model, err := emptyModel(kind)
	if err != nil {
		return 0, err
	}
	res := tx.Where("id IN ?", ids).Delete(model)
	return res.RowsAffected, res.Error
}

func (s *DBStorage) Save(_ context.Context) error {
	return nil
}

func (s *DBStorage) Count(ctx context.Context, kind domain.Kind) (int64, error) {
	model, err := emptyModel(kind)
	if err != nil {
		return 0, err
	}
	var n int64
	err = s.db.WithContext(ctx).Model(model).Count(&n).Error
	return n, errors.Wrapf(err, "count %s", kind)
}

func (s *DBStorage) Cities(ctx context.Context, stateID string) ([]*domain.City, error) {
	var out []*domain.City
	err := s.db.WithContext(ctx).Where("state_id = ?", stateID).Order("created_at, id").Find(&out).Error
	if err != nil {
		return nil, errors.Wrapf(err, "cities of state %s", stateID)
	}
	for _, c := range out {
		normalize(c)
	}
	return out, nil
}

func (s *DBStorage) Places(ctx context.Context, cityID string) ([]*domain.Place, error) {
	var out []*domain.Place
	err := s.db.WithContext(ctx).Where("city_id = ?", cityID).Order("created_at, id").Find(&out).Error
	if err != nil {
		return nil, errors.Wrapf(err, "places of city %s", cityID)
	}
	for _, p := range out {
		normalize(p)
	}
	return out, nil
}

func (s *DBStorage) Reviews(ctx context.Context, placeID string) ([]*domain.Review, error) {
	var out []*domain.Review
	err := s.db.WithContext(ctx).Where("place_id = ?", placeID).Order("created_at, id").Find(&out).Error
	if err != nil {
		return nil, errors.Wrapf(err, "reviews of place %s", placeID)
	}
	for _, r := range out {
		normalize(r)
	}
	return out, nil
}

func (s *DBStorage) Amenities(ctx context.Context, placeID string) ([]*domain.Amenity, error) {
	var out []*domain.Amenity
	err := s.db.WithContext(ctx).
		Joins("JOIN "+placeAmenityTable+" ON "+placeAmenityTable+".amenity_id = amenities.id").
		Where(placeAmenityTable+".place_id = ?", placeID).
		Order("amenities.created_at, amenities.id").
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrapf(err, "amenities of place %s", placeID)
	}
	for _, a := range out {
		normalize(a)
	}
	return out, nil
}

func (s *DBStorage) LinkAmenity(ctx context.Context, placeID, amenityID string) error {
	db := s.db.WithContext(ctx)
	for _, ref := range []struct {
		model domain.Entity
		id    string
	}{{&domain.Place{}, placeID}, {&domain.Amenity{}, amenityID}} {
		var n int64
		if err := db.Model(ref.model).Where("id = ?", ref.id).Count(&n).Error; err != nil {
			return errors.Wrap(err, "link amenity")
		}
		if n == 0 {
			return ErrNotFound
		}
	}

	err := db.Exec("INSERT INTO "+placeAmenityTable+" (place_id, amenity_id) VALUES (?, ?)", placeID, amenityID).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyLinked
		}
		return errors.Wrap(err, "link amenity")
	}
	return nil
}

func (s *DBStorage) UnlinkAmenity(ctx context.Context, placeID, amenityID string) error {
	res := s.db.WithContext(ctx).Exec(
		"DELETE FROM "+placeAmenityTable+" WHERE place_id = ? AND amenity_id = ?", placeID, amenityID)
	if res.Error != nil {
		return errors.Wrap(res.Error, "unlink amenity")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DBStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
