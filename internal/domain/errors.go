package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicate       = errors.New("duplicate resource")
	ErrUnauthorized    = errors.New("authorization required")
	ErrForbidden       = errors.New("invalid or expired token")
	ErrRenderFailed    = errors.New("could not render invoice")
)

// InsufficientStockError names the offending product so handlers can
// surface it to the caller.
type InsufficientStockError struct {
	ProductName string
	Want, Have  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product: %s (need %d, have %d)", e.ProductName, e.Want, e.Have)
}

// NotFoundf wraps ErrNotFound with the missing resource's name.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}
