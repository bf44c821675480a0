package shared

import (
	"strings"
	"unicode"
)

// EscapeString drops control characters from text received from the server
// before it is written to the terminal.
func EscapeString(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeEmail trims surrounding whitespace and lowercases the address so
// that grant lists compare emails the way the backend does.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
