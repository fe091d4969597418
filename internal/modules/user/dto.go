package user

import "encoding/json"

type CreateUserRequest struct {
	Email    json.RawMessage `json:"email" validate:"required"`
	Password json.RawMessage `json:"password" validate:"required"`
}

const passwordKey = "password"

// protected keys are never assigned from a client body on update.
var protected = []string{"email"}
