package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the validator used by the API handlers. Request structs carry
// presence-only tags; semantic checks (currency support, amount ceilings)
// stay with the payment gateway, which is the source of truth for them.
func New() *validatorv10.Validate {
	return validatorv10.New()
}
