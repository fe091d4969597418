package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind names an entity type. The value doubles as the "__class__" of the
// representation and as the prefix of file storage keys.
type Kind string

const (
	KindState   Kind = "State"
	KindCity    Kind = "City"
	KindAmenity Kind = "Amenity"
	KindUser    Kind = "User"
	KindPlace   Kind = "Place"
	KindReview  Kind = "Review"
)

// Kinds lists every entity kind in dependency order (parents first).
var Kinds = []Kind{KindState, KindCity, KindAmenity, KindUser, KindPlace, KindReview}

// Entity is implemented by every persisted domain object.
type Entity interface {
	Kind() Kind
	Meta() *Base
	Clone() Entity
}

// Base holds the identity and timestamps shared by all entities.
type Base struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey;size:60"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null"`
}

func (b *Base) Meta() *Base { return b }

// Touch bumps UpdatedAt.
func (b *Base) Touch() {
	b.UpdatedAt = Now()
}

func newBase() Base {
	now := Now()
	return Base{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Now returns the current UTC time truncated to the precision every backend
// can round-trip.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// New returns a fresh entity of the given kind with a generated id and
// timestamps.
func New(kind Kind) (Entity, error) {
	switch kind {
	case KindState:
		return NewState(), nil
	case KindCity:
		return NewCity(), nil
	case KindAmenity:
		return NewAmenity(), nil
	case KindUser:
		return NewUser(), nil
	case KindPlace:
		return NewPlace(), nil
	case KindReview:
		return NewReview(), nil
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

// ParseKind maps a "__class__" value to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Models returns one zero value per entity table for migrations.
func Models() []any {
	return []any{&State{}, &City{}, &Amenity{}, &User{}, &Place{}, &Review{}}
}
