// Package search filters places by state, city and amenity ids.
package search

import (
	"context"
	"errors"
	"fmt"

	"hbnb/internal/domain"
	"hbnb/internal/storage"
)

// Filter is the body of a place search. Every list may be empty or absent.
type Filter struct {
	States    []string `json:"states"`
	Cities    []string `json:"cities"`
	Amenities []string `json:"amenities"`
}

// Empty reports whether no list carries an id.
func (f Filter) Empty() bool {
	return len(f.States) == 0 && len(f.Cities) == 0 && len(f.Amenities) == 0
}

// Catalog is the slice of the storage gateway the engine reads.
type Catalog interface {
	Get(ctx context.Context, kind domain.Kind, id string) (domain.Entity, error)
	All(ctx context.Context, kind domain.Kind) ([]domain.Entity, error)
	Cities(ctx context.Context, stateID string) ([]*domain.City, error)
	Amenities(ctx context.Context, placeID string) ([]*domain.Amenity, error)
}

type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Places returns the places matching f in store order.
//
// An empty filter matches every place. Otherwise the candidate cities are
// those owned by the listed states plus the listed cities; unknown ids are
// skipped. A place matches when its city is a candidate and, if amenities
// are listed, it has every one of them. Listing only amenities therefore
// matches nothing.
func (e *Engine) Places(ctx context.Context, f Filter) ([]*domain.Place, error) {
	all, err := e.catalog.All(ctx, domain.KindPlace)
	if err != nil {
		return nil, err
	}
	places := make([]*domain.Place, 0, len(all))
	for _, item := range all {
		p, ok := item.(*domain.Place)
		if !ok {
			return nil, fmt.Errorf("search: unexpected %T in places", item)
		}
		places = append(places, p)
	}
	if f.Empty() {
		return places, nil
	}

	cityIDs, err := e.candidateCities(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Place, 0)
	for _, p := range places {
		if _, ok := cityIDs[p.CityID]; !ok {
			continue
		}
		if len(f.Amenities) > 0 {
			ok, err := e.hasAll(ctx, p.ID, f.Amenities)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (e *Engine) candidateCities(ctx context.Context, f Filter) (map[string]struct{}, error) {
	ids := map[string]struct{}{}

	for _, stateID := range f.States {
		if _, err := e.catalog.Get(ctx, domain.KindState, stateID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		cities, err := e.catalog.Cities(ctx, stateID)
		if err != nil {
			return nil, err
		}
		for _, c := range cities {
			ids[c.ID] = struct{}{}
		}
	}

	for _, cityID := range f.Cities {
		if _, err := e.catalog.Get(ctx, domain.KindCity, cityID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		ids[cityID] = struct{}{}
	}

	return ids, nil
}

func (e *Engine) hasAll(ctx context.Context, placeID string, want []string) (bool, error) {
	amenities, err := e.catalog.Amenities(ctx, placeID)
	if err != nil {
		return false, err
	}
	have := make(map[string]struct{}, len(amenities))
	for _, a := range amenities {
		have[a.ID] = struct{}{}
	}
	for _, id := range want {
		if _, ok := have[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}
