package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

	v = validator.New(validator.WithRequiredStructEnabled())
)

// Body runs struct-tag validation on a decoded JSON request body.
func Body(s any) error {
	return v.Struct(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 64 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (product/category/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", false
	}
	return s, true
}

// Password enforces a minimum length for registration and resets.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72
}
