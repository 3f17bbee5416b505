package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SwitchUserRequest struct {
	UserID string `json:"user_id"`
}

func (r SwitchUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
	)
}
