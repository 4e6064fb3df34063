package auth

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidPhone means the input cannot be coerced into a valid Ethiopian
// mobile number. Validation happens before any network call.
var ErrInvalidPhone = errors.New("auth: invalid phone number")

var (
	nonDigits    = regexp.MustCompile(`\D`)
	phonePattern = regexp.MustCompile(`^\+251[79]\d{8}$`)
)

// NormalizePhone coerces user input into the +251 international format the
// backend stores: local numbers drop the leading zero, bare subscriber
// numbers get the country code prefixed.
func NormalizePhone(raw string) (string, error) {
	digits := nonDigits.ReplaceAllString(raw, "")

	var normalized string
	switch {
	case strings.HasPrefix(digits, "0"):
		normalized = "+251" + digits[1:]
	case strings.HasPrefix(digits, "251"):
		normalized = "+" + digits
	default:
		normalized = "+251" + digits
	}

	if !phonePattern.MatchString(normalized) {
		return "", ErrInvalidPhone
	}
	return normalized, nil
}
