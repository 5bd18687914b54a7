package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CheckoutRequest selects the branch and optional delivery location
type CheckoutRequest struct {
	BranchID string `json:"branch_id"`
	Location string `json:"location"`
}

func (r CheckoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BranchID, validation.Length(0, 64)),
		validation.Field(&r.Location, validation.RuneLength(0, 500)),
	)
}
