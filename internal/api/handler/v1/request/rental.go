package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type BorrowRequest struct {
	UmbrellaID string `json:"umbrella_id"`
	UserID     string `json:"user_id"`
}

func (r BorrowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UmbrellaID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
	)
}

type ReturnRequest struct {
	UmbrellaID string `json:"umbrella_id"`
	UserID     string `json:"user_id"`
}

func (r ReturnRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UmbrellaID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
	)
}

type PartnerReturnRequest struct {
	UmbrellaID     string `json:"umbrella_id"`
	UserID         string `json:"user_id"`
	PartnerStoreID string `json:"partner_store_id"`
}

func (r PartnerReturnRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UmbrellaID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.PartnerStoreID, validation.Required),
	)
}
