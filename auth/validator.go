package auth

import (
	"chat-session/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const maxCredentialLength = 8192

// ValidateCredential rejects values that cannot be sent as a bearer token
// or a query parameter.
func ValidateCredential(value string) error {
	if value == "" {
		return errors.ErrEmptyCredential
	}
	if err := validate.Var(value, fmt.Sprintf("max=%d,printascii", maxCredentialLength)); err != nil {
		return fmt.Errorf("invalid credential: %w", err)
	}
	if strings.ContainsAny(value, " \t") {
		return fmt.Errorf("invalid credential: contains whitespace")
	}
	return nil
}
