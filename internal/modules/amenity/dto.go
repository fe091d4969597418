package amenity

import "encoding/json"

type CreateAmenityRequest struct {
	Name json.RawMessage `json:"name" validate:"required"`
}
