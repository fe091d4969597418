package review

import "encoding/json"

type CreateReviewRequest struct {
	UserID json.RawMessage `json:"user_id" validate:"required"`
	Text   json.RawMessage `json:"text" validate:"required"`
}

var protected = []string{"user_id", "place_id"}
