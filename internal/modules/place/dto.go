package place

import (
	"encoding/json"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/request"
	"hbnb/internal/search"
)

type CreatePlaceRequest struct {
	UserID json.RawMessage `json:"user_id" validate:"required"`
	Name   json.RawMessage `json:"name" validate:"required"`
}

// protected keys are never assigned from a client body on update.
var protected = []string{"user_id", "city_id"}

// parseFilter reads the id lists of a search body. Absent and null lists are
// empty; other keys are ignored.
func parseFilter(body request.Object) (search.Filter, error) {
	var f search.Filter
	for key, dst := range map[string]*[]string{
		"states":    &f.States,
		"cities":    &f.Cities,
		"amenities": &f.Amenities,
	} {
		v, ok := body[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return search.Filter{}, &domain.FieldError{Field: key, Err: err}
		}
	}
	return f, nil
}
