package city

import "encoding/json"

type CreateCityRequest struct {
	Name json.RawMessage `json:"name" validate:"required"`
}

// protected keys are never assigned from a client body.
var protected = []string{"state_id"}
