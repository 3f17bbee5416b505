package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// ScanRequest carries a raw QR payload from the scanner UI.
type ScanRequest struct {
	Payload string `json:"payload"`
}

func (r ScanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Payload, validation.Required),
	)
}
