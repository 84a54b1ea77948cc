package handlers

import (
	"errors"

	"photonx/internal/domain"
	applog "photonx/internal/log"
	"photonx/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fail converts a service error into the HTTP JSON error surface. All
// failures cross this boundary; database errors are not distinguished
// from other internals and come out as generic 500s.
func fail(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	var valErrs validator.ValidationErrors

	status := fiber.StatusInternalServerError
	msg := "Server error"

	switch {
	case errors.As(err, &stockErr):
		status, msg = fiber.StatusBadRequest, stockErr.Error()
	case errors.As(err, &valErrs):
		status, msg = fiber.StatusBadRequest, "invalid request body"
	case errors.Is(err, domain.ErrNotFound):
		status, msg = fiber.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidArgument):
		status, msg = fiber.StatusBadRequest, "invalid argument"
	case errors.Is(err, domain.ErrDuplicate):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrBadCreds):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, msg = fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, msg = fiber.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrRenderFailed):
		status, msg = fiber.StatusInternalServerError, "Error generating invoice"
	default:
		applog.Error(c, "server.error", err, nil)
	}

	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}
