package shared

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedResponse is returned when a backend response does not decode
// into, or does not satisfy, the expected entity shape.
var ErrMalformedResponse = errors.New("malformed response")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a decoded response against its struct tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}

var ErrInvalidEmail = errors.New("invalid email")

// ValidateEmail checks user input before it is sent as an email address.
func ValidateEmail(email string) error {
	if err := validate.Var(NormalizeEmail(email), "required,email"); err != nil {
		return ErrInvalidEmail
	}

	return nil
}
