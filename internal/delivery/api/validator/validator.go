// Package validator wires go-playground/validator into Echo's Validator hook.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts a validator.Validate for echo.Echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
