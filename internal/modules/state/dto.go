package state

import "encoding/json"

type CreateStateRequest struct {
	Name json.RawMessage `json:"name" validate:"required"`
}
