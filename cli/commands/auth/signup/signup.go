package signup

import (
	"errors"
	"strings"
	"unicode"
)

const minUsernameLength = 3
const minPasswordLength = 8

var (
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrUsernameInvalid  = errors.New("username may only contain letters, digits, '.', '-' and '_'")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

func validateUsername(s string) error {
	s = strings.TrimSpace(s)
	if len(s) < minUsernameLength {
		return ErrUsernameTooShort
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune(".-_", r) {
			return ErrUsernameInvalid
		}
	}

	return nil
}

func validatePassword(s string) error {
	if len(s) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}
